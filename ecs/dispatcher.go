package ecs

import "github.com/TheBitDrifter/bark"

// Step runs every registered system once, in registration order. For each
// system the dispatcher walks the add-edge subgraph rooted at the system's
// archetype depth-first, in edge insertion order, and invokes the callback on
// every row. Predecessor wiring means several paths can reach the same
// descendant, so visits are deduplicated per system.
func (r *Registry) Step() {
	for _, s := range r.systemIndex.Values() {
		r.visited.Clear()
		r.dispatch(s.archetype, s.signature, s.fn)
	}
}

func (r *Registry) dispatch(a *Archetype, signature *Signature, fn SystemFunc) {
	if _, seen := r.visited.Get(a.id); seen {
		return
	}
	r.visited.Put(a.id, true)

	// Every archetype reached from the system's starting vertex stores a
	// superset of the signature's projection, so each declared component has
	// a column here.
	indices := make([]uint32, signature.Len())
	for i, c := range signature.Components() {
		column := a.typ.IndexOf(c)
		if column < 0 {
			panic(bark.AddTrace(InvariantViolationError{
				Detail: "dispatch reached an archetype missing a signature component",
			}))
		}
		indices[i] = uint32(column)
	}

	view := View{components: a.components, sizes: a.sizes, indices: indices}
	for row := uint32(0); row < a.count; row++ {
		fn(view, row)
	}
	for _, e := range a.right.edges {
		r.dispatch(e.Archetype, signature, fn)
	}
}
