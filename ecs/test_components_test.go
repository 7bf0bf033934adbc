package ecs_test

import (
	"unsafe"

	"github.com/jasonliang-dev/entity-component-system/ecs"
)

// Common component payloads used across the tests. Components are registered
// by byte size only; these types give the raw cells a shape.

type Vec2 struct {
	X, Y float32
}

var (
	sizeInt32 = unsafe.Sizeof(int32(0))
	sizeVec2  = unsafe.Sizeof(Vec2{})
)

func ptrInt32(v int32) unsafe.Pointer {
	return unsafe.Pointer(&v)
}

func setInt32(r *ecs.Registry, e, c ecs.Entity, v int32) {
	r.Set(e, c, unsafe.Pointer(&v))
}

func getInt32(r *ecs.Registry, e, c ecs.Entity) int32 {
	return *(*int32)(r.Get(e, c))
}

func setVec2(r *ecs.Registry, e, c ecs.Entity, v Vec2) {
	r.Set(e, c, unsafe.Pointer(&v))
}

func getVec2(r *ecs.Registry, e, c ecs.Entity) Vec2 {
	return *(*Vec2)(r.Get(e, c))
}
