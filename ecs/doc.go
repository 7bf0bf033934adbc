/*
Package ecs is an archetype-based Entity-Component-System runtime.

Entities are integer ids. A component is an entity registered with a byte
size, and every distinct set of components an entity holds — its archetype —
is one vertex of a graph whose edges are labeled by single component
additions. Entities sharing an archetype are stored together in a
column-major table, one dense buffer per component, so systems iterate
sequential memory.

	registry := ecs.NewRegistry()

	position := registry.NewComponent(unsafe.Sizeof(Vec2{}))
	velocity := registry.NewComponent(unsafe.Sizeof(Vec2{}))

	e := registry.NewEntity()
	registry.Attach(e, position)
	registry.Attach(e, velocity)
	registry.Set(e, position, unsafe.Pointer(&Vec2{0, 0}))
	registry.Set(e, velocity, unsafe.Pointer(&Vec2{1, 1}))

	registry.NewSystem(ecs.NewSignature(position, velocity), func(v ecs.View, row uint32) {
		pos := (*Vec2)(v.Get(row, 0))
		vel := (*Vec2)(v.Get(row, 1))
		pos.X += vel.X
		pos.Y += vel.Y
	})

	registry.Step()

Attach leaves the new component's storage uninitialized; Set must run before
the first read. A Registry and everything it owns require exclusive access:
no operation is safe to call concurrently or from inside a system callback.
*/
package ecs
