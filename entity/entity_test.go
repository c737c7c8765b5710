package entity_test

import (
	"testing"

	"github.com/delaneyj/synthparty/entity"
	"github.com/delaneyj/synthparty/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityGetSet(t *testing.T) {
	reg := entity.NewRegistry()
	e := reg.New(map[string]any{"first": "Ann"})

	assert.Equal(t, "Ann", e.Get("first"))
	assert.Nil(t, e.Get("last"))

	e.Set("last", "Lee")
	assert.Equal(t, "Lee", e.Get("last"))
}

// each Set emits one single-record batch with real old and new values
func TestEntitySetEmitsRecord(t *testing.T) {
	reg := entity.NewRegistry()
	e := reg.New(map[string]any{"first": "Ann"})

	var batches [][]stream.Record
	e.Changes().Listen(func(batch []stream.Record) { batches = append(batches, batch) }, nil, nil)

	e.Set("first", "Anna")
	e.Set("age", 44)

	require.Len(t, batches, 2)
	require.Len(t, batches[0], 1)
	assert.Equal(t, "first", batches[0][0].Key)
	assert.Equal(t, "Ann", batches[0][0].OldValue)
	assert.Equal(t, "Anna", batches[0][0].NewValue)

	// a previously unset key records nil as the old value
	assert.Nil(t, batches[1][0].OldValue)
	assert.Equal(t, 44, batches[1][0].NewValue)
}

// Update emits all records as one batch, ordered by key
func TestEntityUpdateBatches(t *testing.T) {
	reg := entity.NewRegistry()
	e := reg.New(map[string]any{"first": "Ann", "last": "Lee"})

	var batches [][]stream.Record
	e.Changes().Listen(func(batch []stream.Record) { batches = append(batches, batch) }, nil, nil)

	e.Update(map[string]any{"last": "Li", "first": "Anna"})
	e.Update(nil)

	require.Len(t, batches, 1)
	require.Len(t, batches[0], 2)
	assert.Equal(t, "first", batches[0][0].Key)
	assert.Equal(t, "last", batches[0][1].Key)
	assert.Equal(t, "Anna", e.Get("first"))
	assert.Equal(t, "Li", e.Get("last"))
}

func TestRegistryAssignsUniqueIDs(t *testing.T) {
	reg := entity.NewRegistry()
	a := reg.New(nil)
	b := reg.New(nil)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, reg.Len())
}

// destroy runs hooks in registration order, then completes the stream
func TestRegistryDestroy(t *testing.T) {
	reg := entity.NewRegistry()

	var order []string
	reg.OnDestroy(func(*entity.Entity) { order = append(order, "evict") })
	reg.OnDestroy(func(*entity.Entity) { order = append(order, "audit") })

	e := reg.New(nil)

	done := false
	e.Changes().Listen(nil, nil, func() {
		done = true
		// hooks have already run by the time the stream completes
		assert.Equal(t, []string{"evict", "audit"}, order)
	})

	reg.Destroy(e)
	assert.True(t, done)
	assert.Equal(t, 0, reg.Len())

	// destroying twice is a no-op
	reg.Destroy(e)
	assert.Equal(t, []string{"evict", "audit"}, order)
}

func TestRegistryDestroyForeignEntity(t *testing.T) {
	regA := entity.NewRegistry()
	regB := entity.NewRegistry()

	e := regA.New(nil)
	regB.Destroy(e)

	assert.Equal(t, 1, regA.Len())
	assert.False(t, e.Changes().(*stream.Broadcast).IsClosed())
}

// setting on a destroyed entity panics, its stream is closed
func TestEntitySetAfterDestroyPanics(t *testing.T) {
	reg := entity.NewRegistry()
	e := reg.New(nil)
	reg.Destroy(e)

	assert.Panics(t, func() { e.Set("first", "Ann") })
}
