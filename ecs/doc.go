// Package ecs provides a small generation-counted entity store.
//
// A [World] hands out [Entity] handles: an ID plus a version counter.
// Destroying an entity bumps the version, so handles to recycled slots go
// stale instead of silently pointing at the new occupant; every operation
// taking an Entity rejects stale handles with [ErrInvalidEntity].
//
// Components are plain Go values attached per type with the package-level
// generics:
//
//	e := world.Create()
//	ecs.Attach(world, e, Position{X: 10, Y: 20})
//	if pos, ok := ecs.Get[Position](world, e); ok {
//		pos.X++
//	}
//
// Iteration, both over all live entities ([World.Each]) and over entities
// carrying a component ([Each]), visits entities in creation order.
package ecs
