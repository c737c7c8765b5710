// Package stream carries property change records between entities,
// dependency sources and views. Events are batches (slices) of records,
// delivered synchronously in the order they are added. Nothing in this
// package is safe for concurrent use; drive a stream and all of its
// listeners from a single goroutine.
package stream

import "github.com/cespare/xxhash/v2"

// Record describes one property change. Entity streams fill in OldValue
// and NewValue; synthetic records emitted by views leave both nil and
// only name the key, readers recompute to learn the new value.
type Record struct {
	Key      string
	OldValue any
	NewValue any

	// hash of Key, 0 when the record was built as a plain literal.
	// Filters compare hashes before strings and fall back to the
	// string compare for unhashed records.
	hash uint64
}

// NewRecord builds a record with its key hash precomputed so batch
// scans in filters stay on the integer fast path.
func NewRecord(key string, oldValue, newValue any) Record {
	return Record{
		Key:      key,
		OldValue: oldValue,
		NewValue: newValue,
		hash:     xxhash.Sum64String(key),
	}
}

// Stream is a broadcast source of change record batches. Listen attaches
// callbacks, any of which may be nil, and returns a stop func that
// cancels the subscription. Stop funcs are idempotent and report the
// first teardown error, if any.
type Stream interface {
	Listen(onBatch func(batch []Record), onError func(err error), onDone func()) (stop func() error)
}
