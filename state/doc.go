// Package state provides a stack of application states with lifecycle
// hooks, timed transitions, and a queued event dispatcher.
//
// A [Manager] owns a stack of [State] values sharing a caller-defined
// context type. Pushing suspends the current state and enters the new
// one; popping exits the top state and resumes the one beneath. Stack
// changes requested during a frame are deferred to the start of the next
// [Manager.Update], so hooks never run from inside another state's
// Update or Draw.
//
// States may opt into timed fade transitions by implementing
// [Transitional]; the manager then drives a [gween] tween through the
// enter and exit phases, exposed via [Manager.Phase] and
// [Manager.Progress] for rendering.
//
// Events queued with [Manager.Queue] are delivered synchronously at the
// start of the next Update: first to the active state if it implements
// [EventHandler], then to entity subscribers in entity creation order.
//
// [gween]: https://github.com/tanema/gween
package state
