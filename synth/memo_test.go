package synth_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/synthparty/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should run the wrapped func at most once per entity
func TestMemoComputesOncePerEntity(t *testing.T) {
	calls := 0
	memo := synth.NewMemo(func(e synth.Observable) (any, error) {
		calls++
		return e.Get("first").(string) + " " + e.Get("last").(string), nil
	})

	e := newTestEntity(map[string]any{"first": "Ann", "last": "Lee"})

	v, err := memo.Compute(e)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", v)

	v, err = memo.Compute(e)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", v)
	assert.Equal(t, 1, calls)
}

// entities cache by identity, never by content
func TestMemoKeysByIdentity(t *testing.T) {
	calls := 0
	memo := synth.NewMemo(func(e synth.Observable) (any, error) {
		calls++
		return e.Get("x"), nil
	})

	a := newTestEntity(map[string]any{"x": 1})
	b := newTestEntity(map[string]any{"x": 1})

	memo.Compute(a)
	memo.Compute(b)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, memo.Size())
}

// a failed compute caches nothing; the next call retries
func TestMemoDoesNotCacheFailures(t *testing.T) {
	boom := errors.New("compute failed")
	calls := 0
	memo := synth.NewMemo(func(synth.Observable) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	})

	e := newTestEntity(nil)

	_, err := memo.Compute(e)
	assert.Same(t, boom, err)
	assert.Equal(t, 0, memo.Size())

	v, err := memo.Compute(e)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

// nil is a legitimate cached value, not a miss sentinel
func TestMemoCachesNil(t *testing.T) {
	calls := 0
	memo := synth.NewMemo(func(synth.Observable) (any, error) {
		calls++
		return nil, nil
	})

	e := newTestEntity(nil)

	v, err := memo.Compute(e)
	require.NoError(t, err)
	assert.Nil(t, v)

	memo.Compute(e)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, memo.Size())
}

// evicting an entity frees its slot; the next compute runs fresh
func TestMemoEvict(t *testing.T) {
	calls := 0
	memo := synth.NewMemo(func(e synth.Observable) (any, error) {
		calls++
		return e.Get("x"), nil
	})

	e := newTestEntity(map[string]any{"x": 1})

	memo.Compute(e)
	memo.Evict(e)
	assert.Equal(t, 0, memo.Size())

	e.set("x", 2)
	v, err := memo.Compute(e)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)

	// evicting an unknown entity is a no-op
	memo.Evict(newTestEntity(nil))
	assert.Equal(t, 1, memo.Size())
}

// each wrapper has its own independent cache
func TestMemoCachesAreIndependent(t *testing.T) {
	callsA, callsB := 0, 0
	fn := func(e synth.Observable) (any, error) { return e.Get("x"), nil }
	memoA := synth.NewMemo(func(e synth.Observable) (any, error) { callsA++; return fn(e) })
	memoB := synth.NewMemo(func(e synth.Observable) (any, error) { callsB++; return fn(e) })

	e := newTestEntity(map[string]any{"x": 1})

	memoA.Compute(e)
	memoA.Compute(e)
	memoB.Compute(e)
	assert.Equal(t, 1, callsA)
	assert.Equal(t, 1, callsB)
}
