package ecs

import "unsafe"

// View is the window a system callback receives into one archetype: the
// archetype's column buffers plus the mapping from signature position to
// column. Views are plain values, cheap to copy, and valid only for the
// duration of the callback.
type View struct {
	components [][]byte
	sizes      []uintptr
	indices    []uint32
}

// SystemFunc is a system callback, invoked once per row of every matching
// archetype. Callbacks must not perform structural registry operations
// (Attach, NewEntity, ...); they may only read and write through the view.
type SystemFunc func(view View, row uint32)

// Get resolves the cell for a row and a signature position. The position is
// the index into the system's declared signature, not the archetype column:
// position i addresses the i-th component the system declared, regardless of
// where that component lands in the archetype's sorted type.
func (v View) Get(row uint32, position int) unsafe.Pointer {
	i := v.indices[position]
	return unsafe.Pointer(&v.components[i][uintptr(row)*v.sizes[i]])
}
