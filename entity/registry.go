package entity

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/synthparty/stream"
)

// Registry creates entities and owns their destruction. Destroying an
// entity is the trigger for releasing everything keyed on it: destroy
// hooks run first (wire memo eviction here), then the entity's change
// stream completes, which cascades done through any active views.
type Registry struct {
	alive  mapset.Set[*Entity]
	hooks  []func(e *Entity)
	nextID uint64
}

func NewRegistry() *Registry {
	return &Registry{
		alive: mapset.NewThreadUnsafeSet[*Entity](),
	}
}

// New creates a live entity seeded with a copy of props. props may be
// nil.
func (r *Registry) New(props map[string]any) *Entity {
	r.nextID++
	e := &Entity{
		id:      r.nextID,
		props:   make(map[string]any, len(props)),
		changes: stream.NewBroadcast(nil, nil),
	}
	for k, v := range props {
		e.props[k] = v
	}
	r.alive.Add(e)
	return e
}

// OnDestroy registers a hook run for every entity this registry
// destroys, in registration order, before the entity's stream closes.
func (r *Registry) OnDestroy(hook func(e *Entity)) {
	r.hooks = append(r.hooks, hook)
}

// Destroy runs the destroy hooks for e and completes its change
// stream. Destroying an entity twice, or one from another registry, is
// a no-op.
func (r *Registry) Destroy(e *Entity) {
	if !r.alive.Contains(e) {
		return
	}
	r.alive.Remove(e)
	for _, hook := range r.hooks {
		hook(e)
	}
	e.changes.Close()
}

// Len reports how many entities are alive.
func (r *Registry) Len() int {
	return r.alive.Cardinality()
}
