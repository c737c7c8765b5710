// Package entity is a minimal entity wrapper: a bag of stored
// properties with a broadcast change stream, plus a registry that owns
// entity lifetimes. Views and memo caches from the synth package
// consume entities through their Observable interface; any other type
// with stable identity, Get, and Changes works just as well.
//
// Single goroutine only, like the streams underneath.
package entity

import (
	"sort"

	"github.com/delaneyj/synthparty/stream"
)

// Entity is one domain object. Create entities through a Registry so
// destruction hooks, memo eviction among them, can run.
type Entity struct {
	id      uint64
	props   map[string]any
	changes *stream.Broadcast
}

// ID is the registry-assigned identifier, unique within the registry.
func (e *Entity) ID() uint64 {
	return e.id
}

// Get returns the stored property value for key, nil when unset.
func (e *Entity) Get(key string) any {
	return e.props[key]
}

// Set stores one property and emits a single-record batch carrying the
// old and new values. Setting on a destroyed entity panics; its stream
// is closed.
func (e *Entity) Set(key string, value any) {
	old := e.props[key]
	e.props[key] = value
	e.changes.Add([]stream.Record{stream.NewRecord(key, old, value)})
}

// Update stores several properties and emits them as one batch, records
// ordered by key so deliveries are deterministic.
func (e *Entity) Update(props map[string]any) {
	if len(props) == 0 {
		return
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	batch := make([]stream.Record, 0, len(keys))
	for _, k := range keys {
		old := e.props[k]
		e.props[k] = props[k]
		batch = append(batch, stream.NewRecord(k, old, props[k]))
	}
	e.changes.Add(batch)
}

// Changes is the entity's own change stream: one batch per Set, one per
// Update, real old and new values in every record. It completes when
// the entity is destroyed.
func (e *Entity) Changes() stream.Stream {
	return e.changes
}
