package state

import (
	"errors"
	"testing"

	"github.com/phanxgames/grit"
)

// trace collects hook invocations across all test states.
type trace struct {
	log []string
}

func (tr *trace) add(s string) {
	tr.log = append(tr.log, s)
}

// probe is a State that records every hook call.
type probe struct {
	name     string
	duration float64
	tick     bool
}

func (p *probe) Enter(tr *trace)   { tr.add("enter " + p.name) }
func (p *probe) Exit(tr *trace)    { tr.add("exit " + p.name) }
func (p *probe) Suspend(tr *trace) { tr.add("suspend " + p.name) }
func (p *probe) Resume(tr *trace)  { tr.add("resume " + p.name) }
func (p *probe) Update(tr *trace)  { tr.add("update " + p.name) }
func (p *probe) Draw(tr *trace, target *grit.Bitmap) {
	tr.add("draw " + p.name)
}

func (p *probe) TransitionDuration() float64 { return p.duration }
func (p *probe) TickWhileSuspended() bool    { return p.tick }

func wantLog(t *testing.T, tr *trace, want ...string) {
	t.Helper()
	if len(tr.log) != len(want) {
		t.Fatalf("log = %v, want %v", tr.log, want)
	}
	for i := range want {
		if tr.log[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q (full log %v)", i, tr.log[i], want[i], tr.log)
		}
	}
}

func TestPushPopHookOrder(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	a := &probe{name: "a"}
	b := &probe{name: "b"}

	if err := m.Push(a); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)
	wantLog(t, tr, "enter a", "update a")

	tr.log = nil
	if err := m.Push(b); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)
	wantLog(t, tr, "suspend a", "enter b", "update b")

	tr.log = nil
	if err := m.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	m.Update(tr)
	wantLog(t, tr, "exit b", "resume a", "update a")

	if m.Depth() != 1 || m.Active() != State[*trace](a) {
		t.Errorf("Depth = %d, Active = %v", m.Depth(), m.Active())
	}
}

func TestCommandsAreDeferredToNextUpdate(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	a := &probe{name: "a"}

	if err := m.Push(a); err != nil {
		t.Fatalf("Push: %v", err)
	}
	// no hooks yet: push takes effect inside Update
	wantLog(t, tr)
	if m.Depth() != 0 {
		t.Errorf("Depth before Update = %d, want 0", m.Depth())
	}

	m.Update(tr)
	if m.Depth() != 1 {
		t.Errorf("Depth after Update = %d, want 1", m.Depth())
	}
}

func TestSecondCommandWhilePendingFails(t *testing.T) {
	m := NewManager[*trace]()
	a := &probe{name: "a"}
	b := &probe{name: "b"}

	if err := m.Push(a); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := m.Push(b); !errors.Is(err, ErrPendingChange) {
		t.Errorf("second Push err = %v, want ErrPendingChange", err)
	}

	m.Update(&trace{})
	if err := m.Push(b); err != nil {
		t.Errorf("Push after Update: %v", err)
	}
}

func TestPopValidatesDepth(t *testing.T) {
	m := NewManager[*trace]()
	if err := m.Pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("Pop on empty stack err = %v, want ErrStackUnderflow", err)
	}

	if err := m.Push(&probe{name: "a"}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(&trace{})
	if err := m.PopN(2); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("PopN(2) of 1 err = %v, want ErrStackUnderflow", err)
	}
}

func TestPopNExitsTopDownResumesSurvivor(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	for _, name := range []string{"a", "b", "c"} {
		if err := m.Push(&probe{name: name}); err != nil {
			t.Fatalf("Push: %v", err)
		}
		m.Update(tr)
	}

	tr.log = nil
	if err := m.PopN(2); err != nil {
		t.Fatalf("PopN: %v", err)
	}
	m.Update(tr)
	wantLog(t, tr, "exit c", "exit b", "resume a", "update a")
}

func TestReplaceExitsBeforeEnter(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	a := &probe{name: "a"}
	b := &probe{name: "b"}
	c := &probe{name: "c"}

	if err := m.Push(a); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)
	if err := m.Push(b); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)

	tr.log = nil
	if err := m.Replace(c); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	m.Update(tr)
	// the state beneath sees neither suspend nor resume
	wantLog(t, tr, "exit b", "enter c", "update c")
}

func TestReplaceOnEmptyStackPushes(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	if err := m.Replace(&probe{name: "a"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	m.Update(tr)
	wantLog(t, tr, "enter a", "update a")
}

func TestDrawReachesOnlyTopState(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	if err := m.Push(&probe{name: "a"}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)
	if err := m.Push(&probe{name: "b"}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)

	tr.log = nil
	m.Draw(tr, nil)
	wantLog(t, tr, "draw b")
}

func TestSuspendedTickerKeepsUpdating(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	a := &probe{name: "a", tick: true}
	b := &probe{name: "b"}

	if err := m.Push(a); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)
	if err := m.Push(b); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)

	tr.log = nil
	m.Update(tr)
	wantLog(t, tr, "update a", "update b")
}

func TestTransitionalEnterPhases(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	m.SetTickDelta(0.5)
	f := &probe{name: "f", duration: 1.0}

	if err := m.Push(f); err != nil {
		t.Fatalf("Push: %v", err)
	}

	m.Update(tr) // enter; transition starts
	if m.Phase() != PhaseIn || m.Progress() != 0 {
		t.Errorf("after enter: phase %v progress %v, want in 0", m.Phase(), m.Progress())
	}

	m.Update(tr) // half way
	if m.Phase() != PhaseIn || m.Progress() != 0.5 {
		t.Errorf("mid transition: phase %v progress %v, want in 0.5", m.Phase(), m.Progress())
	}

	m.Update(tr) // complete
	if m.Phase() != PhaseActive || m.Progress() != 1 {
		t.Errorf("after transition: phase %v progress %v, want active 1", m.Phase(), m.Progress())
	}

	// the state updates during its fade-in
	wantLog(t, tr, "enter f", "update f", "update f", "update f")
}

func TestTransitionalExitDefersPop(t *testing.T) {
	tr := &trace{}
	m := NewManager[*trace]()
	m.SetTickDelta(0.5)
	base := &probe{name: "base"}
	f := &probe{name: "f", duration: 1.0}

	if err := m.Push(base); err != nil {
		t.Fatalf("Push: %v", err)
	}
	m.Update(tr)
	if err := m.Push(f); err != nil {
		t.Fatalf("Push: %v", err)
	}
	for i := 0; i < 3; i++ { // enter + finish fade-in
		m.Update(tr)
	}

	tr.log = nil
	if err := m.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}

	m.Update(tr) // fade-out starts
	if m.Phase() != PhaseOut {
		t.Fatalf("phase = %v, want out", m.Phase())
	}
	if err := m.Push(&probe{name: "x"}); !errors.Is(err, ErrPendingChange) {
		t.Errorf("command during fade-out err = %v, want ErrPendingChange", err)
	}

	m.Update(tr) // fade-out half way
	if m.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5", m.Progress())
	}

	m.Update(tr) // fade-out completes; pop lands
	if m.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", m.Depth())
	}
	wantLog(t, tr,
		"update f", // fade-out starting frame
		"update f", // mid fade
		"exit f", "resume base", "update base")
}
