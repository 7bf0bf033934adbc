package ecs

// Signature is the ordered tuple of component ids a system declares. Unlike a
// Type it is not sorted: the declaration order is what the system callback
// uses to index columns through its View, so the registry retains the
// signature for as long as the system is registered.
type Signature struct {
	components []Entity
}

// NewSignature builds a signature from component ids in declaration order.
func NewSignature(components ...Entity) *Signature {
	return &Signature{components: components}
}

// Len returns the number of declared components.
func (s *Signature) Len() int {
	return len(s.components)
}

// Components returns the declared ids in order. The slice aliases internal
// storage and must not be mutated.
func (s *Signature) Components() []Entity {
	return s.components
}

// AsType projects the signature onto a fresh sorted, deduplicated Type.
func (s *Signature) AsType() *Type {
	t := NewType(uint32(len(s.components)))
	for _, e := range s.components {
		t.Add(e)
	}
	return t
}
