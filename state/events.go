package state

import (
	"fmt"

	"github.com/phanxgames/grit/ecs"
)

// Event is an application-defined event payload, typically a small
// struct whose type identifies the event.
type Event any

// Queue adds an event to the pending queue. Events are delivered
// synchronously at the start of the next [Manager.Update]; queueing from
// inside a handler holds the event for the pass after that, so dispatch
// never recurses.
func (m *Manager[C]) Queue(ev Event) {
	m.queue = append(m.queue, ev)
}

// PendingEvents returns the number of events waiting for the next
// dispatch pass.
func (m *Manager[C]) PendingEvents() int {
	return len(m.queue)
}

// BindWorld attaches an entity world so that entity subscribers can be
// delivered events in entity creation order.
func (m *Manager[C]) BindWorld(w *ecs.World) {
	m.world = w
}

// SubscribeEntity registers an event callback tied to an entity's
// lifetime: the subscription dies with the entity. A handler returning
// true consumes the event. Requires a world bound via [Manager.BindWorld].
func (m *Manager[C]) SubscribeEntity(e ecs.Entity, fn func(ctx C, ev Event) bool) error {
	if m.world == nil {
		return fmt.Errorf("state: no world bound for entity subscriber")
	}
	if !m.world.Alive(e) {
		return fmt.Errorf("%w: %+v", ecs.ErrInvalidEntity, e)
	}
	m.subs[e] = fn
	return nil
}

// UnsubscribeEntity removes the entity's event subscription, if any.
func (m *Manager[C]) UnsubscribeEntity(e ecs.Entity) {
	delete(m.subs, e)
}

// dispatchEvents drains the queue swapped at entry, delivering each
// event first to the active state, then to entity subscribers in entity
// creation order until one consumes it.
func (m *Manager[C]) dispatchEvents(ctx C) {
	if len(m.queue) == 0 {
		return
	}
	queue := m.queue
	m.queue = nil

	for _, ev := range queue {
		if top := m.top(); top != nil {
			if h, ok := top.state.(EventHandler[C]); ok && h.HandleEvent(ctx, ev) {
				continue
			}
		}
		if m.world == nil {
			continue
		}
		m.world.Each(func(e ecs.Entity) bool {
			fn, ok := m.subs[e]
			if !ok {
				return true
			}
			return !fn(ctx, ev)
		})
	}

	// drop subscriptions whose entity has died
	if m.world != nil {
		for e := range m.subs {
			if !m.world.Alive(e) {
				delete(m.subs, e)
			}
		}
	}
}
