package ecs

// Systems is an ordered collection of update and draw functions sharing a
// caller-defined context type, typically a struct bundling the world, the
// frame delta, and the render target. Functions run in registration
// order.
type Systems[C any] struct {
	updates []func(C)
	draws   []func(C)
}

// NewSystems creates an empty system list.
func NewSystems[C any]() *Systems[C] {
	return &Systems[C]{}
}

// AddUpdate appends an update function.
func (s *Systems[C]) AddUpdate(fn func(C)) {
	s.updates = append(s.updates, fn)
}

// AddDraw appends a draw function.
func (s *Systems[C]) AddDraw(fn func(C)) {
	s.draws = append(s.draws, fn)
}

// Update runs all update functions in registration order.
func (s *Systems[C]) Update(ctx C) {
	for _, fn := range s.updates {
		fn(ctx)
	}
}

// Draw runs all draw functions in registration order.
func (s *Systems[C]) Draw(ctx C) {
	for _, fn := range s.draws {
		fn(ctx)
	}
}

// Reset removes all registered functions.
func (s *Systems[C]) Reset() {
	s.updates = nil
	s.draws = nil
}
