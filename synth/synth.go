// Package synth computes derived ("synthetic") properties of entities
// and exposes them through observable per-entity views. A property is
// registered once, globally, as a compute function plus the
// dependencies that should invalidate it; views evaluate lazily on
// Read and only hold dependency subscriptions while someone listens.
//
// Like the streams it rides on, nothing here is safe for concurrent
// use; one goroutine drives registration, reads, and change delivery.
package synth

import "github.com/delaneyj/synthparty/stream"

// Observable is the entity-side contract a view needs: named stored
// property access plus a broadcast stream of property change batches.
// Implementations must have a stable identity (pointer-shaped values
// qualify), both for memoization keys and for subscription tracking.
type Observable interface {
	Get(key string) any
	Changes() stream.Stream
}

// ComputeFunc derives a value from an entity. It must be synchronous
// and should be idempotent; views call it on every Read.
type ComputeFunc func(e Observable) (any, error)
