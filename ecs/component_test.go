package ecs

import "testing"

type position struct{ X, Y float64 }
type velocity struct{ DX, DY float64 }

func TestAttachGetDetach(t *testing.T) {
	w := NewWorld()
	e := w.Create()

	if Has[position](w, e) {
		t.Error("Has reported a component before Attach")
	}
	if err := Attach(w, e, position{1, 2}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !Has[position](w, e) {
		t.Error("Has did not see the attached component")
	}

	pos, ok := Get[position](w, e)
	if !ok {
		t.Fatal("Get did not find the component")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("component = %+v, want {1 2}", *pos)
	}

	// Get hands out a live pointer
	pos.X = 42
	again, _ := Get[position](w, e)
	if again.X != 42 {
		t.Error("mutation through Get's pointer was lost")
	}

	// re-attach replaces
	if err := Attach(w, e, position{9, 9}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	pos, _ = Get[position](w, e)
	if pos.X != 9 {
		t.Errorf("re-attached component = %+v, want {9 9}", *pos)
	}

	removed, err := Detach[position](w, e)
	if err != nil || !removed {
		t.Fatalf("Detach = %v, %v, want true, nil", removed, err)
	}
	if Has[position](w, e) {
		t.Error("component present after Detach")
	}
	removed, err = Detach[position](w, e)
	if err != nil || removed {
		t.Errorf("second Detach = %v, %v, want false, nil", removed, err)
	}
}

func TestComponentsAreIndependentPerType(t *testing.T) {
	w := NewWorld()
	e := w.Create()

	if err := Attach(w, e, position{1, 1}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := Attach(w, e, velocity{2, 2}); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if _, ok := Get[position](w, e); !ok {
		t.Error("position missing")
	}
	if _, ok := Get[velocity](w, e); !ok {
		t.Error("velocity missing")
	}

	if _, err := Detach[velocity](w, e); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if !Has[position](w, e) {
		t.Error("detaching velocity removed position")
	}

	types := w.ComponentTypes(e)
	if len(types) != 1 || types[0].Name() != "position" {
		t.Errorf("ComponentTypes = %v, want [position]", types)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := w.Create()
	if err := Attach(w, e, position{5, 5}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := w.Destroy(e); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	// a new entity in the recycled slot must not inherit components
	reborn := w.Create()
	if reborn.ID != e.ID {
		t.Fatalf("expected slot reuse, got ID %d", reborn.ID)
	}
	if Has[position](w, reborn) {
		t.Error("recycled entity inherited a component")
	}
}

func TestEachComponentCreationOrder(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	b := w.Create()
	c := w.Create()

	for i, e := range []Entity{a, b, c} {
		if err := Attach(w, e, position{X: float64(i)}); err != nil {
			t.Fatalf("Attach: %v", err)
		}
	}
	if _, err := Detach[position](w, b); err != nil {
		t.Fatalf("Detach: %v", err)
	}

	var xs []float64
	Each[position](w, func(e Entity, p *position) bool {
		xs = append(xs, p.X)
		return true
	})
	if len(xs) != 2 || xs[0] != 0 || xs[1] != 2 {
		t.Errorf("visited X values %v, want [0 2]", xs)
	}

	// mutation during iteration sticks
	Each[position](w, func(e Entity, p *position) bool {
		p.X += 10
		return true
	})
	pa, _ := Get[position](w, a)
	if pa.X != 10 {
		t.Errorf("a.X = %v, want 10", pa.X)
	}
}

func TestSystemsRunInRegistrationOrder(t *testing.T) {
	type frame struct{ log *[]string }

	var log []string
	s := NewSystems[frame]()
	s.AddUpdate(func(f frame) { *f.log = append(*f.log, "u1") })
	s.AddUpdate(func(f frame) { *f.log = append(*f.log, "u2") })
	s.AddDraw(func(f frame) { *f.log = append(*f.log, "d1") })

	ctx := frame{log: &log}
	s.Update(ctx)
	s.Draw(ctx)

	want := []string{"u1", "u2", "d1"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}

	s.Reset()
	log = nil
	s.Update(ctx)
	s.Draw(ctx)
	if len(log) != 0 {
		t.Errorf("functions ran after Reset: %v", log)
	}
}
