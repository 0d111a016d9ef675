package ecs

import (
	"fmt"
	"reflect"
)

// componentStore is the untyped view of a per-type component store, used
// by the world for entity teardown.
type componentStore interface {
	remove(id uint32)
	has(id uint32) bool
	clear()
}

// store holds components of one type, keyed by entity ID. Values live
// behind pointers so Get can hand out stable references.
type store[T any] struct {
	data map[uint32]*T
}

func (s *store[T]) remove(id uint32)   { delete(s.data, id) }
func (s *store[T]) has(id uint32) bool { _, ok := s.data[id]; return ok }
func (s *store[T]) clear()             { clear(s.data) }

func storeFor[T any](w *World, create bool) *store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*store[T])
	}
	if !create {
		return nil
	}
	s := &store[T]{data: make(map[uint32]*T)}
	w.stores[t] = s
	return s
}

// Attach sets the entity's component of type T, replacing any existing
// one.
func Attach[T any](w *World, e Entity, value T) error {
	if !w.Alive(e) {
		return fmt.Errorf("%w: %+v", ErrInvalidEntity, e)
	}
	storeFor[T](w, true).data[e.ID] = &value
	return nil
}

// Detach removes the entity's component of type T, reporting whether one
// was present.
func Detach[T any](w *World, e Entity) (bool, error) {
	if !w.Alive(e) {
		return false, fmt.Errorf("%w: %+v", ErrInvalidEntity, e)
	}
	s := storeFor[T](w, false)
	if s == nil {
		return false, nil
	}
	_, ok := s.data[e.ID]
	delete(s.data, e.ID)
	return ok, nil
}

// Get returns a pointer to the entity's component of type T. The pointer
// stays valid until the component is detached or the entity destroyed.
func Get[T any](w *World, e Entity) (*T, bool) {
	if !w.Alive(e) {
		return nil, false
	}
	s := storeFor[T](w, false)
	if s == nil {
		return nil, false
	}
	v, ok := s.data[e.ID]
	return v, ok
}

// Has reports whether the entity carries a component of type T.
func Has[T any](w *World, e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	s := storeFor[T](w, false)
	return s != nil && s.has(e.ID)
}

// Each calls fn for every live entity carrying a component of type T, in
// creation order, stopping early if fn returns false.
func Each[T any](w *World, fn func(Entity, *T) bool) {
	s := storeFor[T](w, false)
	if s == nil {
		return
	}
	w.Each(func(e Entity) bool {
		v, ok := s.data[e.ID]
		if !ok {
			return true
		}
		return fn(e, v)
	})
}
