package ecs

// ArchetypeStats describes one storage table.
type ArchetypeStats struct {
	ID         uint32
	Components int
	Entities   uint32
	Capacity   uint32
}

// Stats is a point-in-time summary of a registry.
type Stats struct {
	Entities   uint32
	Components uint32
	Systems    uint32
	Archetypes []ArchetypeStats
}

// Stats summarizes the registry: index sizes plus the shape of every live
// archetype, in type-index insertion order.
func (r *Registry) Stats() Stats {
	archetypes := r.typeIndex.Values()
	s := Stats{
		Entities:   r.entityIndex.Len(),
		Components: r.componentIndex.Len(),
		Systems:    r.systemIndex.Len(),
		Archetypes: make([]ArchetypeStats, 0, len(archetypes)),
	}
	for _, a := range archetypes {
		s.Archetypes = append(s.Archetypes, ArchetypeStats{
			ID:         a.id,
			Components: a.typ.Len(),
			Entities:   a.count,
			Capacity:   a.capacity,
		})
	}
	return s
}
