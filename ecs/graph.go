package ecs

// Graph construction. The component graph stays "as complete as currently
// known": whenever a new archetype with k components is inserted, every
// existing archetype whose type is the new type minus one element gets a
// right edge to it. The dispatcher depends on this to discover descendants
// from any ancestor.

// insertVertex registers a new archetype under newType (which it adopts),
// wires the obvious edge from leftNeighbour, then searches from the root for
// every other direct type-predecessor and wires those too.
func (r *Registry) insertVertex(leftNeighbour *Archetype, newType *Type, edgeComponent Entity) *Archetype {
	arch := newArchetype(r.nextArchetypeID, newType, r.componentIndex)
	r.nextArchetypeID++
	r.typeIndex.Set(newType, arch)
	makeEdges(leftNeighbour, arch, edgeComponent)
	insertVertexHelp(r.root, arch)
	return arch
}

// insertVertexHelp descends the add-edge graph looking for archetypes exactly
// one component short of added's type. Nodes deeper than that are pruned.
// Wiring is idempotent: a predecessor reached twice (or the left neighbour
// wired by insertVertex) keeps a single edge.
func insertVertexHelp(node, added *Archetype) {
	n := node.typ.Len()
	k := added.typ.Len() - 1
	if n > k {
		return
	}
	if n < k {
		for _, e := range node.right.edges {
			insertVertexHelp(e.Archetype, added)
		}
		return
	}
	if !added.typ.IsSuperset(node.typ) {
		return
	}

	// The edge label is the single element of added's type missing from
	// node's: the first position where the two diverge.
	nodeElems := node.typ.Elements()
	addedElems := added.typ.Elements()
	i := 0
	for i < len(nodeElems) && nodeElems[i] == addedElems[i] {
		i++
	}
	component := addedElems[i]
	if node.right.find(component) != nil {
		return
	}
	makeEdges(node, added, component)
}

// traverseAndCreate descends from the root toward target, following the right
// edge labeled by each of target's components in sorted order and
// manufacturing any missing intermediate archetype along the way. Returns
// the archetype whose type equals target.
func (r *Registry) traverseAndCreate(target *Type) *Archetype {
	node := r.root
	for _, e := range target.Elements() {
		next := node.right.find(e)
		if next == nil {
			prefix := node.typ.Copy()
			prefix.Add(e)
			if existing, ok := r.typeIndex.Get(prefix); ok {
				// The prefix archetype predates node, so predecessor wiring
				// never linked the two.
				makeEdges(node, existing, e)
				next = existing
			} else {
				next = r.insertVertex(node, prefix, e)
			}
		}
		node = next
	}
	return node
}
