package state

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/grit"
	"github.com/phanxgames/grit/ecs"
)

// DefaultTickDelta is the per-Update transition timestep, matching a
// 60 Hz fixed-tick game loop.
const DefaultTickDelta = 1.0 / 60.0

type cmdKind int

const (
	cmdPush cmdKind = iota
	cmdPop
	cmdReplace
)

type command[C any] struct {
	kind  cmdKind
	state State[C]
	count int
}

type entry[C any] struct {
	state    State[C]
	phase    Phase
	tween    *gween.Tween
	progress float64
}

// Manager runs a stack of states. Stack changes (Push, Pop, Replace) are
// deferred: they take effect at the start of the next Update, and only
// one may be pending at a time. Not safe for concurrent use.
type Manager[C any] struct {
	stack     []*entry[C]
	pending   *command[C]
	tickDelta float64

	queue []Event
	subs  map[ecs.Entity]func(C, Event) bool
	world *ecs.World
}

// NewManager creates an empty manager ticking transitions at
// [DefaultTickDelta] per Update.
func NewManager[C any]() *Manager[C] {
	return &Manager[C]{
		tickDelta: DefaultTickDelta,
		subs:      make(map[ecs.Entity]func(C, Event) bool),
	}
}

// SetTickDelta sets the transition timestep in seconds per Update call,
// for loops that tick at something other than 60 Hz.
func (m *Manager[C]) SetTickDelta(dt float64) {
	if dt > 0 {
		m.tickDelta = dt
	}
}

// Depth returns the number of states on the stack, including one that is
// still transitioning out.
func (m *Manager[C]) Depth() int {
	return len(m.stack)
}

// Active returns the top state, or the zero value if the stack is empty.
func (m *Manager[C]) Active() State[C] {
	if top := m.top(); top != nil {
		return top.state
	}
	var none State[C]
	return none
}

// Phase returns the lifecycle phase of the top state. An empty stack
// reports PhaseActive.
func (m *Manager[C]) Phase() Phase {
	if top := m.top(); top != nil {
		return top.phase
	}
	return PhaseActive
}

// Progress returns the transition progress of the top state: 0 at the
// start of a fade-in or end of a fade-out, 1 while fully active.
func (m *Manager[C]) Progress() float64 {
	if top := m.top(); top != nil {
		return top.progress
	}
	return 1
}

func (m *Manager[C]) top() *entry[C] {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Manager[C]) busy() bool {
	if m.pending != nil {
		return true
	}
	top := m.top()
	return top != nil && top.phase == PhaseOut
}

// Push requests that s become the new top state. The current top is
// suspended and s entered at the start of the next Update.
func (m *Manager[C]) Push(s State[C]) error {
	if m.busy() {
		return ErrPendingChange
	}
	m.pending = &command[C]{kind: cmdPush, state: s}
	return nil
}

// Pop requests that the top state be removed, exiting it and resuming
// the state beneath.
func (m *Manager[C]) Pop() error {
	return m.PopN(1)
}

// PopN requests that the top n states be removed. Each is exited from the
// top down; only the final surviving state is resumed.
func (m *Manager[C]) PopN(n int) error {
	if m.busy() {
		return ErrPendingChange
	}
	if n < 1 || n > len(m.stack) {
		return fmt.Errorf("%w: pop %d of %d", ErrStackUnderflow, n, len(m.stack))
	}
	m.pending = &command[C]{kind: cmdPop, count: n}
	return nil
}

// Replace requests that the top state be swapped for s. The outgoing
// state always exits before s enters; the state beneath sees neither a
// suspend nor a resume.
func (m *Manager[C]) Replace(s State[C]) error {
	if m.busy() {
		return ErrPendingChange
	}
	if len(m.stack) == 0 {
		m.pending = &command[C]{kind: cmdPush, state: s}
		return nil
	}
	m.pending = &command[C]{kind: cmdReplace, state: s}
	return nil
}

// Update processes a pending stack change, advances transitions,
// delivers queued events, and updates the running states. Call once per
// frame tick.
func (m *Manager[C]) Update(ctx C) {
	m.advance(ctx)
	m.dispatchEvents(ctx)

	for i, en := range m.stack {
		if i == len(m.stack)-1 {
			en.state.Update(ctx)
			continue
		}
		if t, ok := en.state.(SuspendedTicker); ok && t.TickWhileSuspended() {
			en.state.Update(ctx)
		}
	}
}

// Draw draws the top state onto target.
func (m *Manager[C]) Draw(ctx C, target *grit.Bitmap) {
	if top := m.top(); top != nil {
		top.state.Draw(ctx, target)
	}
}

// advance moves transitions forward and applies the pending command once
// the way is clear.
func (m *Manager[C]) advance(ctx C) {
	if top := m.top(); top != nil && top.tween != nil {
		progress, done := top.tween.Update(float32(m.tickDelta))
		top.progress = float64(progress)
		if done {
			top.tween = nil
			switch top.phase {
			case PhaseIn:
				top.phase = PhaseActive
				top.progress = 1
			case PhaseOut:
				m.finishOutgoing(ctx)
			}
		}
	}

	if m.pending == nil {
		return
	}
	if top := m.top(); top != nil && top.phase == PhaseOut {
		return // wait for the exit transition
	}

	cmd := m.pending
	switch cmd.kind {
	case cmdPush:
		m.pending = nil
		if top := m.top(); top != nil {
			top.state.Suspend(ctx)
		}
		m.enter(ctx, cmd.state)

	case cmdPop, cmdReplace:
		top := m.top()
		if top == nil {
			m.pending = nil
			return
		}
		if d, ok := top.state.(Transitional); ok && d.TransitionDuration() > 0 {
			top.phase = PhaseOut
			top.tween = gween.New(1, 0, float32(d.TransitionDuration()), ease.Linear)
			return // command completes when the transition does
		}
		m.finishOutgoing(ctx)
	}
}

// finishOutgoing exits the top state and completes the pending pop or
// replace it belonged to.
func (m *Manager[C]) finishOutgoing(ctx C) {
	cmd := m.pending
	m.pending = nil

	top := m.top()
	top.state.Exit(ctx)
	m.stack = m.stack[:len(m.stack)-1]

	if cmd == nil {
		return
	}
	switch cmd.kind {
	case cmdPop:
		// remaining pops are immediate: the states below were suspended
		// and get no transition of their own
		for i := 1; i < cmd.count; i++ {
			top = m.top()
			top.state.Exit(ctx)
			m.stack = m.stack[:len(m.stack)-1]
		}
		if survivor := m.top(); survivor != nil {
			survivor.state.Resume(ctx)
		}
	case cmdReplace:
		m.enter(ctx, cmd.state)
	}
}

func (m *Manager[C]) enter(ctx C, s State[C]) {
	en := &entry[C]{state: s, phase: PhaseActive, progress: 1}
	if d, ok := s.(Transitional); ok && d.TransitionDuration() > 0 {
		en.phase = PhaseIn
		en.progress = 0
		en.tween = gween.New(0, 1, float32(d.TransitionDuration()), ease.Linear)
	}
	m.stack = append(m.stack, en)
	s.Enter(ctx)
}
