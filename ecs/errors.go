package ecs

import "fmt"

// Every error in this package is fatal: registry and archetype operations
// panic with one of these values (trace-attached) instead of returning it;
// the map's debug-only probe-length check panics with a plain string. There
// is no local
// recovery; a violated lookup or bound means the registry's invariants are
// already broken.

// UnknownEntityError is raised when an operation names an entity with no
// record in the registry.
type UnknownEntityError struct {
	Entity Entity
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity: %d", e.Entity)
}

// UnknownComponentError is raised when an operation names an id that was
// never registered as a component.
type UnknownComponentError struct {
	Component Entity
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component: %d", e.Component)
}

// MissingComponentError is raised when writing a component an entity's
// archetype does not store.
type MissingComponentError struct {
	Entity    Entity
	Component Entity
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("entity %d does not have component %d", e.Entity, e.Component)
}

// OutOfBoundsError is raised when a row index violates an archetype's bounds.
type OutOfBoundsError struct {
	Row   uint32
	Count uint32
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("row %d out of bounds (%d rows)", e.Row, e.Count)
}

// InvariantViolationError marks a should-never-happen graph or type shape.
type InvariantViolationError struct {
	Detail string
}

func (e InvariantViolationError) Error() string {
	return "invariant violation: " + e.Detail
}
