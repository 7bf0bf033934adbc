package ecs_test

import (
	"bytes"
	"testing"

	"github.com/jasonliang-dev/entity-component-system/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryMinimal(t *testing.T) {
	r := ecs.NewRegistry()
	r.Destroy()
}

func TestRegistryIdsStartAtOne(t *testing.T) {
	r := ecs.NewRegistry()
	assert.Equal(t, ecs.Entity(1), r.NewEntity())
	assert.Equal(t, ecs.Entity(2), r.NewComponent(4))
	assert.Equal(t, ecs.Entity(3), r.NewEntity())
}

func TestAttachAndSet(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	e := r.NewEntity()

	r.Attach(e, c)
	setInt32(r, e, c, 42)

	rec, ok := r.Record(e)
	require.True(t, ok)
	assert.Equal(t, 1, rec.Archetype.Type().Len())
	assert.Equal(t, int32(42), getInt32(r, e, c))
}

func TestSystemObservesValue(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	e := r.NewEntity()
	r.Attach(e, c)
	setInt32(r, e, c, 42)

	var observed []int32
	r.NewSystem(ecs.NewSignature(c), func(v ecs.View, row uint32) {
		observed = append(observed, *(*int32)(v.Get(row, 0)))
	})

	r.Step()
	assert.Equal(t, []int32{42}, observed)
}

func TestMoveSystem(t *testing.T) {
	r := ecs.NewRegistry()
	pos := r.NewComponent(sizeInt32)
	vel := r.NewComponent(sizeInt32)

	e := r.NewEntity()
	r.Attach(e, pos)
	r.Attach(e, vel)
	setInt32(r, e, pos, 0)
	setInt32(r, e, vel, 1)

	r.NewSystem(ecs.NewSignature(pos, vel), func(v ecs.View, row uint32) {
		p := (*int32)(v.Get(row, 0))
		*p += *(*int32)(v.Get(row, 1))
	})

	for i := 0; i < 15; i++ {
		r.Step()
	}
	assert.Equal(t, int32(15), getInt32(r, e, pos))
}

func TestManyEntitiesVectorAdd(t *testing.T) {
	r := ecs.NewRegistry()
	pos := r.NewComponent(sizeVec2)
	vel := r.NewComponent(sizeVec2)

	const entityCount = 1000
	const steps = 1000

	entities := make([]ecs.Entity, entityCount)
	for i := range entities {
		e := r.NewEntity()
		entities[i] = e
		r.Attach(e, pos)
		r.Attach(e, vel)
		setVec2(r, e, pos, Vec2{0, 0})
		setVec2(r, e, vel, Vec2{1, 1})
	}

	r.NewSystem(ecs.NewSignature(pos, vel), func(v ecs.View, row uint32) {
		p := (*Vec2)(v.Get(row, 0))
		vl := (*Vec2)(v.Get(row, 1))
		p.X += vl.X
		p.Y += vl.Y
	})

	for i := 0; i < steps; i++ {
		r.Step()
	}

	for _, e := range entities {
		got := getVec2(r, e, pos)
		require.Equal(t, Vec2{steps, steps}, got)
	}
}

// The view maps signature positions, not sorted column order: a system that
// declares (vel, pos) reads vel at position 0 even though pos sorts first.
func TestViewUsesDeclarationOrder(t *testing.T) {
	r := ecs.NewRegistry()
	pos := r.NewComponent(sizeInt32)
	vel := r.NewComponent(sizeInt32)

	e := r.NewEntity()
	r.Attach(e, pos)
	r.Attach(e, vel)
	setInt32(r, e, pos, 1)
	setInt32(r, e, vel, 2)

	r.NewSystem(ecs.NewSignature(vel, pos), func(v ecs.View, row uint32) {
		assert.Equal(t, int32(2), *(*int32)(v.Get(row, 0)))
		assert.Equal(t, int32(1), *(*int32)(v.Get(row, 1)))
	})
	r.Step()
}

func TestSystemSeesSupersetArchetypes(t *testing.T) {
	r := ecs.NewRegistry()
	a := r.NewComponent(sizeInt32)
	b := r.NewComponent(sizeInt32)

	onlyA := r.NewEntity()
	r.Attach(onlyA, a)
	setInt32(r, onlyA, a, 1)

	both := r.NewEntity()
	r.Attach(both, a)
	r.Attach(both, b)
	setInt32(r, both, a, 2)
	setInt32(r, both, b, 3)

	sum := int32(0)
	r.NewSystem(ecs.NewSignature(a), func(v ecs.View, row uint32) {
		sum += *(*int32)(v.Get(row, 0))
	})
	r.Step()
	assert.Equal(t, int32(3), sum, "system on {a} sees rows of {a} and {a,b}")
}

// An archetype reachable over several ancestor paths is still visited once.
func TestDispatcherDeduplicatesVisits(t *testing.T) {
	r := ecs.NewRegistry()
	a := r.NewComponent(sizeInt32)
	b := r.NewComponent(sizeInt32)

	e1 := r.NewEntity()
	r.Attach(e1, a)
	e2 := r.NewEntity()
	r.Attach(e2, b)
	e3 := r.NewEntity()
	r.Attach(e3, a)
	r.Attach(e3, b)

	rows := 0
	r.NewSystem(ecs.NewSignature(), func(ecs.View, uint32) {
		rows++
	})
	r.Step()
	assert.Equal(t, 3, rows, "each entity visited exactly once")
}

func TestStepRunsSystemsInRegistrationOrder(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	e := r.NewEntity()
	r.Attach(e, c)
	setInt32(r, e, c, 0)

	var order []string
	r.NewSystem(ecs.NewSignature(c), func(ecs.View, uint32) {
		order = append(order, "first")
	})
	r.NewSystem(ecs.NewSignature(c), func(ecs.View, uint32) {
		order = append(order, "second")
	})

	r.Step()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAttachUnknownEntityPanics(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	assert.Panics(t, func() {
		r.Attach(999, c)
	})
}

func TestAttachUnknownComponentPanics(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.NewEntity()
	assert.Panics(t, func() {
		r.Attach(e, 999)
	})
}

func TestSetMissingComponentPanics(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	e := r.NewEntity()
	// c exists but was never attached to e.
	assert.Panics(t, func() {
		setInt32(r, e, c, 1)
	})
}

func TestSetUnknownEntityPanics(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	assert.Panics(t, func() {
		setInt32(r, 999, c, 1)
	})
}

func TestStats(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	e := r.NewEntity()
	r.Attach(e, c)
	r.NewSystem(ecs.NewSignature(c), func(ecs.View, uint32) {})

	s := r.Stats()
	assert.Equal(t, uint32(1), s.Entities)
	assert.Equal(t, uint32(1), s.Components)
	assert.Equal(t, uint32(1), s.Systems)
	assert.Len(t, s.Archetypes, 2, "root and {c}")
}

func TestInspectWritesSomething(t *testing.T) {
	r := ecs.NewRegistry()
	c := r.NewComponent(sizeInt32)
	e := r.NewEntity()
	r.Attach(e, c)

	var buf bytes.Buffer
	r.Inspect(&buf)
	assert.Contains(t, buf.String(), "archetype")
}
