package stream

import "github.com/cespare/xxhash/v2"

type keyFilter struct {
	src  Stream
	key  string
	hash uint64
}

// KeyFilter narrows src to the batches that touch one key. A batch
// passes through unchanged when any of its records is for key; errors
// and completion always pass through. Each Listen on the filter holds
// exactly one subscription on src.
func KeyFilter(src Stream, key string) Stream {
	return &keyFilter{
		src:  src,
		key:  key,
		hash: xxhash.Sum64String(key),
	}
}

func (f *keyFilter) Listen(onBatch func(batch []Record), onError func(err error), onDone func()) (stop func() error) {
	return f.src.Listen(func(batch []Record) {
		if onBatch == nil || !f.match(batch) {
			return
		}
		onBatch(batch)
	}, onError, onDone)
}

func (f *keyFilter) match(batch []Record) bool {
	for i := range batch {
		r := &batch[i]
		if (r.hash == f.hash || r.hash == 0) && r.Key == f.key {
			return true
		}
	}
	return false
}
