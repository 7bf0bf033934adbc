package ecs

import (
	"unsafe"

	"github.com/TheBitDrifter/bark"
	"github.com/kamstrup/intmap"
)

const defaultIndexCapacity = 16

// system pairs a registered callback with its signature and the archetype the
// dispatcher starts walking from.
type system struct {
	archetype *Archetype
	signature *Signature
	fn        SystemFunc
}

// Registry owns all ECS state: the entity, component, system and type
// indices, plus the root archetype (the empty type) every entity starts in.
// A registry requires exclusive access; none of its operations are safe for
// concurrent use, and structural operations must not be called from inside a
// system callback.
type Registry struct {
	entityIndex     *Map[Entity, Record]
	componentIndex  *Map[Entity, uintptr]
	systemIndex     *Map[Entity, system]
	typeIndex       *Map[*Type, *Archetype]
	root            *Archetype
	visited         *intmap.Map[uint32, bool]
	nextEntity      Entity
	nextArchetypeID uint32
}

// NewRegistry creates an empty registry with its root archetype.
func NewRegistry() *Registry {
	r := &Registry{
		entityIndex:    NewIntMap[Record](defaultIndexCapacity),
		componentIndex: NewIntMap[uintptr](defaultIndexCapacity),
		systemIndex:    NewIntMap[system](defaultIndexCapacity),
		typeIndex:      NewTypeMap[*Archetype](defaultIndexCapacity),
		visited:        intmap.New[uint32, bool](defaultIndexCapacity),
		nextEntity:     1,
	}
	root := newArchetype(r.nextArchetypeID, NewType(0), r.componentIndex)
	r.nextArchetypeID++
	r.typeIndex.Set(root.typ, root)
	r.root = root
	return r
}

// Destroy drops the registry's archetypes and indices. The registry must not
// be used afterwards; pointers previously returned by Get or View become
// invalid.
func (r *Registry) Destroy() {
	r.entityIndex = nil
	r.componentIndex = nil
	r.systemIndex = nil
	r.typeIndex = nil
	r.root = nil
	r.visited = nil
}

// Root returns the empty-type archetype at the base of the component graph.
func (r *Registry) Root() *Archetype {
	return r.root
}

// NewEntity allocates an id and places the entity in the root archetype.
func (r *Registry) NewEntity() Entity {
	e := r.nextEntity
	r.nextEntity++
	r.root.add(r.entityIndex, e)
	return e
}

// NewComponent allocates an id and registers size as the component's byte
// width. Components share the entity id namespace.
func (r *Registry) NewComponent(size uintptr) Entity {
	c := r.nextEntity
	r.nextEntity++
	r.componentIndex.Set(c, size)
	return c
}

// NewSystem registers fn to run on every entity whose archetype holds all of
// signature's components. The signature is retained: its declaration order is
// what View positions refer to.
func (r *Registry) NewSystem(signature *Signature, fn SystemFunc) Entity {
	typ := signature.AsType()
	arch, ok := r.typeIndex.Get(typ)
	if !ok {
		arch = r.traverseAndCreate(typ)
	}
	id := r.nextEntity
	r.nextEntity++
	r.systemIndex.Set(id, system{archetype: arch, signature: signature, fn: fn})
	return id
}

// Attach adds component c to entity e, moving e's row to the archetype for
// its current type plus c. The fast path copies the current type, adds c and
// looks the result up in the type index; only a miss builds a new graph
// vertex. The new component's cell is uninitialized: Set it before the first
// read. Attaching a component the entity already has is a no-op.
func (r *Registry) Attach(e, c Entity) {
	if _, ok := r.componentIndex.Get(c); !ok {
		panic(bark.AddTrace(UnknownComponentError{Component: c}))
	}
	record, ok := r.entityIndex.Get(e)
	if !ok {
		panic(bark.AddTrace(UnknownEntityError{Entity: e}))
	}
	left := record.Archetype

	newType := left.typ.Copy()
	newType.Add(c)
	right, ok := r.typeIndex.Get(newType)
	if ok {
		// Existing archetype adopted its own type when it was inserted; the
		// copy is discarded.
		if right == left {
			return
		}
	} else {
		right = r.insertVertex(left, newType, c)
	}
	moveEntityRight(left, right, r.entityIndex, record.Row)
}

// Set copies the component's registered byte width from data into e's cell
// for c.
func (r *Registry) Set(e, c Entity, data unsafe.Pointer) {
	size, ok := r.componentIndex.Get(c)
	if !ok {
		panic(bark.AddTrace(UnknownComponentError{Component: c}))
	}
	record, ok := r.entityIndex.Get(e)
	if !ok {
		panic(bark.AddTrace(UnknownEntityError{Entity: e}))
	}
	a := record.Archetype
	column := a.typ.IndexOf(c)
	if column < 0 {
		panic(bark.AddTrace(MissingComponentError{Entity: e, Component: c}))
	}
	dst := a.components[column][uintptr(record.Row)*size : uintptr(record.Row+1)*size]
	copy(dst, unsafe.Slice((*byte)(data), size))
}

// Get returns a pointer to e's data for component c. The pointer is valid
// only until the next Attach (which may reallocate or shuffle columns) or
// Destroy.
func (r *Registry) Get(e, c Entity) unsafe.Pointer {
	size, ok := r.componentIndex.Get(c)
	if !ok {
		panic(bark.AddTrace(UnknownComponentError{Component: c}))
	}
	record, ok := r.entityIndex.Get(e)
	if !ok {
		panic(bark.AddTrace(UnknownEntityError{Entity: e}))
	}
	a := record.Archetype
	column := a.typ.IndexOf(c)
	if column < 0 {
		panic(bark.AddTrace(MissingComponentError{Entity: e, Component: c}))
	}
	return unsafe.Pointer(&a.components[column][uintptr(record.Row)*size])
}

// Record returns the archetype and row where e is stored.
func (r *Registry) Record(e Entity) (Record, bool) {
	return r.entityIndex.Get(e)
}

// Has reports whether entity e currently holds component c. Unknown entities
// and unregistered components simply report false; Has is a query, not an
// invariant check.
func (r *Registry) Has(e, c Entity) bool {
	record, ok := r.entityIndex.Get(e)
	if !ok {
		return false
	}
	return record.Archetype.typ.Contains(c)
}
