package ecs

// Edge links two archetypes whose types differ by exactly one component, the
// edge's label.
type Edge struct {
	Component Entity
	Archetype *Archetype
}

// edgeList is an append-only vector of edges. An archetype holds at most
// |type| left edges and one right edge per registered component it lacks, so
// linear search is fine.
type edgeList struct {
	edges []Edge
}

func (l *edgeList) len() int {
	return len(l.edges)
}

func (l *edgeList) add(component Entity, archetype *Archetype) {
	l.edges = append(l.edges, Edge{Component: component, Archetype: archetype})
}

// remove swaps the matching edge with the last one and shrinks the list.
func (l *edgeList) remove(component Entity) {
	for i, e := range l.edges {
		if e.Component == component {
			last := len(l.edges) - 1
			l.edges[i] = l.edges[last]
			l.edges = l.edges[:last]
			return
		}
	}
}

// find returns the archetype reached over component, or nil.
func (l *edgeList) find(component Entity) *Archetype {
	for _, e := range l.edges {
		if e.Component == component {
			return e.Archetype
		}
	}
	return nil
}
