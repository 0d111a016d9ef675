package ecs

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrInvalidEntity is returned when an operation receives a zero, unknown,
// or stale entity handle.
var ErrInvalidEntity = errors.New("ecs: invalid entity")

// Entity is a handle to an entity in a [World]. The zero Entity is never
// live. Handles stay comparable and copyable; holding one does not keep
// the entity alive.
type Entity struct {
	ID      uint32
	Version uint32
}

type entityMeta struct {
	version uint32
	alive   bool
}

// World owns entities and their components. Not safe for concurrent use;
// the expected model is a single frame-driven goroutine.
type World struct {
	metas   []entityMeta // indexed by ID - 1
	freeIDs []uint32
	order   []Entity // creation order, compacted as destroyed slots pile up
	dead    int
	count   int
	stores  map[reflect.Type]componentStore
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[reflect.Type]componentStore)}
}

// Create allocates a new entity. Slot IDs are recycled from destroyed
// entities, with the version counter telling old handles apart from new
// ones.
func (w *World) Create() Entity {
	var id uint32
	if n := len(w.freeIDs); n > 0 {
		id = w.freeIDs[n-1]
		w.freeIDs = w.freeIDs[:n-1]
		w.metas[id-1].alive = true
	} else {
		w.metas = append(w.metas, entityMeta{version: 1, alive: true})
		id = uint32(len(w.metas))
	}

	e := Entity{ID: id, Version: w.metas[id-1].version}
	w.order = append(w.order, e)
	w.count++
	return e
}

// Destroy removes the entity and all of its components. Destroying a
// stale or unknown handle fails with ErrInvalidEntity.
func (w *World) Destroy(e Entity) error {
	if !w.Alive(e) {
		return fmt.Errorf("%w: %+v", ErrInvalidEntity, e)
	}

	meta := &w.metas[e.ID-1]
	meta.alive = false
	meta.version++
	for _, s := range w.stores {
		s.remove(e.ID)
	}
	w.freeIDs = append(w.freeIDs, e.ID)
	w.count--
	w.dead++

	if w.dead > 64 && w.dead > len(w.order)/2 {
		w.compact()
	}
	return nil
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(e Entity) bool {
	if e.ID == 0 || int(e.ID) > len(w.metas) {
		return false
	}
	meta := w.metas[e.ID-1]
	return meta.alive && meta.version == e.Version
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return w.count
}

// Clear destroys all entities. Outstanding handles go stale.
func (w *World) Clear() {
	for i := range w.metas {
		if w.metas[i].alive {
			w.metas[i].alive = false
			w.metas[i].version++
		}
	}
	w.freeIDs = w.freeIDs[:0]
	for id := uint32(len(w.metas)); id >= 1; id-- {
		w.freeIDs = append(w.freeIDs, id)
	}
	w.order = w.order[:0]
	w.dead = 0
	w.count = 0
	for _, s := range w.stores {
		s.clear()
	}
}

// Each calls fn for every live entity in creation order, stopping early
// if fn returns false. Entities created by fn are not visited in the
// current pass; entities destroyed by fn are skipped if not yet reached.
func (w *World) Each(fn func(Entity) bool) {
	snapshot := w.order
	for _, e := range snapshot {
		if !w.Alive(e) {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Entities returns a snapshot of all live entities in creation order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.count)
	for _, e := range w.order {
		if w.Alive(e) {
			out = append(out, e)
		}
	}
	return out
}

// ComponentTypes returns the types of the components attached to the
// entity, sorted by type name for stable inspector output.
func (w *World) ComponentTypes(e Entity) []reflect.Type {
	if !w.Alive(e) {
		return nil
	}
	var out []reflect.Type
	for t, s := range w.stores {
		if s.has(e.ID) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// compact rebuilds the order list into a fresh slice. An in-flight Each
// holds the old backing array, so rewriting it in place would shift live
// entities into positions the iteration has already passed.
func (w *World) compact() {
	live := make([]Entity, 0, w.count)
	for _, e := range w.order {
		if w.Alive(e) {
			live = append(live, e)
		}
	}
	w.order = live
	w.dead = 0
}
