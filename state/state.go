package state

import (
	"errors"

	"github.com/phanxgames/grit"
)

// Errors reported by the manager.
var (
	// ErrPendingChange is returned when a stack change is requested while
	// another one is still waiting to be processed or transitioning.
	ErrPendingChange = errors.New("state: a stack change is already pending")

	// ErrStackUnderflow is returned when a pop would remove more states
	// than the stack holds.
	ErrStackUnderflow = errors.New("state: not enough states to pop")
)

// State is one entry on a [Manager]'s stack. The context type C is
// caller-defined, typically a struct bundling the things every state
// needs: the entity world, loaded assets, frame timing.
//
// Hook contract: Enter runs once when the state is pushed, Exit once when
// it is popped or replaced. Suspend runs when another state is pushed on
// top, Resume when that state is popped off again. Update and Draw run
// only while the state is on top of the stack, unless it opts in via
// [SuspendedTicker].
type State[C any] interface {
	Enter(ctx C)
	Exit(ctx C)
	Suspend(ctx C)
	Resume(ctx C)
	Update(ctx C)
	Draw(ctx C, target *grit.Bitmap)
}

// Transitional is implemented by states that want a timed transition
// phase when entering and leaving the stack. The manager tweens
// [Manager.Progress] from 0 to 1 after Enter and from 1 to 0 before
// Exit, over the given duration in seconds.
type Transitional interface {
	TransitionDuration() float64
}

// SuspendedTicker is implemented by states that want Update calls even
// while suspended under another state. Draw still reaches only the top
// state.
type SuspendedTicker interface {
	TickWhileSuspended() bool
}

// EventHandler is implemented by states that consume queued events. A
// true return marks the event handled, stopping further delivery.
type EventHandler[C any] interface {
	HandleEvent(ctx C, ev Event) bool
}

// Phase describes where the top state is in its lifecycle.
type Phase int

const (
	// PhaseIn is the enter transition: the state runs but its fade-in is
	// still in progress.
	PhaseIn Phase = iota
	// PhaseActive is normal operation.
	PhaseActive
	// PhaseOut is the exit transition preceding a pop or replace.
	PhaseOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIn:
		return "in"
	case PhaseActive:
		return "active"
	case PhaseOut:
		return "out"
	}
	return "unknown"
}
