package ecs

import (
	"github.com/TheBitDrifter/bark"
)

const initialArchetypeCapacity = 16

// Archetype is a vertex in the component graph and the storage table for
// every entity holding exactly its type. Storage is column-major: one
// contiguous byte buffer per component, all sharing the same row count and
// capacity, parallel to the entity id array. Left edges point to archetypes
// with one component removed, right edges to archetypes with one added.
type Archetype struct {
	id         uint32
	typ        *Type
	entityIDs  []Entity
	components [][]byte
	sizes      []uintptr
	left       edgeList
	right      edgeList
	count      uint32
	capacity   uint32
}

// newArchetype allocates the table for typ, pulling per-column element sizes
// from the component index. The archetype adopts typ.
func newArchetype(id uint32, typ *Type, componentIndex *Map[Entity, uintptr]) *Archetype {
	n := typ.Len()
	a := &Archetype{
		id:         id,
		typ:        typ,
		entityIDs:  make([]Entity, initialArchetypeCapacity),
		components: make([][]byte, n),
		sizes:      make([]uintptr, n),
		capacity:   initialArchetypeCapacity,
	}
	for i, c := range typ.Elements() {
		size, ok := componentIndex.Get(c)
		if !ok {
			panic(bark.AddTrace(UnknownComponentError{Component: c}))
		}
		a.sizes[i] = size
		a.components[i] = make([]byte, initialArchetypeCapacity*int(size))
	}
	return a
}

// ID returns the archetype's registry-assigned identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Type returns the component set stored here. The type is owned by the
// archetype and must not be mutated.
func (a *Archetype) Type() *Type {
	return a.typ
}

// Count returns the number of entity rows in use.
func (a *Archetype) Count() uint32 {
	return a.count
}

// EntityAt returns the entity stored at row.
func (a *Archetype) EntityAt(row uint32) Entity {
	if row >= a.count {
		panic(bark.AddTrace(OutOfBoundsError{Row: row, Count: a.count}))
	}
	return a.entityIDs[row]
}

// RightEdges returns the edges toward archetypes with one extra component.
// The slice aliases internal storage and must not be mutated.
func (a *Archetype) RightEdges() []Edge {
	return a.right.edges
}

// LeftEdges returns the edges toward archetypes with one component removed.
func (a *Archetype) LeftEdges() []Edge {
	return a.left.edges
}

func (a *Archetype) grow() {
	capacity := a.capacity * 2
	ids := make([]Entity, capacity)
	copy(ids, a.entityIDs[:a.count])
	a.entityIDs = ids
	for i := range a.components {
		buf := make([]byte, int(capacity)*int(a.sizes[i]))
		copy(buf, a.components[i])
		a.components[i] = buf
	}
	a.capacity = capacity
}

// add appends e and records its slot in the entity index. This is the single
// place a Record is written for a new row. The row's component cells are not
// initialized; the entity's data must be written with Set before it is read.
func (a *Archetype) add(entityIndex *Map[Entity, Record], e Entity) uint32 {
	if a.count == a.capacity {
		a.grow()
	}
	row := a.count
	a.entityIDs[row] = e
	entityIndex.Set(e, Record{Archetype: a, Row: row})
	a.count++
	return row
}

// moveEntityRight transfers the entity at leftRow into right, whose type must
// equal left's type plus exactly one component. The source row is
// swap-removed: the last row is copied into the vacated slot column by
// column, and the record of the entity that moved down is fixed up. The
// destination cell for the added component is left uninitialized until the
// next Set.
func moveEntityRight(left, right *Archetype, entityIndex *Map[Entity, Record], leftRow uint32) uint32 {
	lastRow := left.count - 1
	removed := left.entityIDs[leftRow]
	left.entityIDs[leftRow] = left.entityIDs[lastRow]
	rightRow := right.add(entityIndex, removed)

	rightElems := right.typ.Elements()
	j := 0
	for i, c := range left.typ.Elements() {
		for j < len(rightElems) && rightElems[j] != c {
			j++
		}
		if j == len(rightElems) {
			panic(bark.AddTrace(InvariantViolationError{
				Detail: "archetype move: destination type is not a superset of the source type",
			}))
		}
		size := left.sizes[i]
		src := left.components[i][uintptr(leftRow)*size : uintptr(leftRow+1)*size]
		dst := right.components[j][uintptr(rightRow)*size : uintptr(rightRow+1)*size]
		copy(dst, src)
		last := left.components[i][uintptr(lastRow)*size : uintptr(lastRow+1)*size]
		copy(src, last)
		j++
	}
	left.count--
	if leftRow < left.count {
		moved := left.entityIDs[leftRow]
		entityIndex.Set(moved, Record{Archetype: left, Row: leftRow})
	}
	return rightRow
}

// makeEdges wires the add edge between two archetypes differing by component.
func makeEdges(left, right *Archetype, component Entity) {
	left.right.add(component, right)
	right.left.add(component, left)
}
