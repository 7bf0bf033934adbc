package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/jasonliang-dev/entity-component-system/ecs"
	"github.com/pkg/profile"
)

type vec2 struct {
	X, Y float32
}

func main() {
	entityCount := flag.Int("entities", 10000, "The number of entities to create.")
	steps := flag.Int("steps", 1000, "The number of dispatcher steps to run.")
	extraComponents := flag.Int("extra-components", 8, "Additional component types scattered across entities to widen the archetype graph.")
	profileMode := flag.String("profile", "", "Enable profiling: cpu or mem.")
	dump := flag.Bool("dump", false, "Dump every archetype after the run.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	registry := ecs.NewRegistry()
	position := registry.NewComponent(unsafe.Sizeof(vec2{}))
	velocity := registry.NewComponent(unsafe.Sizeof(vec2{}))

	extras := make([]ecs.Entity, *extraComponents)
	for i := range extras {
		extras[i] = registry.NewComponent(unsafe.Sizeof(int64(0)))
	}

	log.Printf("Populating registry with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		e := registry.NewEntity()
		registry.Attach(e, position)
		registry.Attach(e, velocity)
		registry.Set(e, position, unsafe.Pointer(&vec2{0, 0}))
		registry.Set(e, velocity, unsafe.Pointer(&vec2{1, 1}))

		// Scatter extra components so the walk covers a real graph, not a
		// single archetype.
		for j, c := range extras {
			if i%(j+2) == 0 {
				registry.Attach(e, c)
				v := int64(i)
				registry.Set(e, c, unsafe.Pointer(&v))
			}
		}
	}
	log.Println("Population complete.")

	registry.NewSystem(ecs.NewSignature(position, velocity), func(v ecs.View, row uint32) {
		pos := (*vec2)(v.Get(row, 0))
		vel := (*vec2)(v.Get(row, 1))
		pos.X += vel.X
		pos.Y += vel.Y
	})

	report := &Report{
		Entities:   *entityCount,
		Components: 2 + *extraComponents,
		Steps:      *steps,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d steps...\n", *steps)
	start := time.Now()
	for i := 0; i < *steps; i++ {
		stepStart := time.Now()
		registry.Step()
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))
	}
	report.TotalTime = time.Since(start)
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Registry = registry.Stats()

	log.Println("Simulation finished.")

	fmt.Println("\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if *dump {
		registry.Inspect(os.Stdout)
	}
}
