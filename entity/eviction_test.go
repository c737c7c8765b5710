package entity_test

import (
	"testing"

	"github.com/delaneyj/synthparty/entity"
	"github.com/delaneyj/synthparty/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entity destruction is the trigger for releasing memo slots: wiring
// Evict into OnDestroy keeps the cache from outliving its entities.
func TestRegistryEvictsMemoOnDestroy(t *testing.T) {
	reg := entity.NewRegistry()

	calls := 0
	memo := synth.NewMemo(func(e synth.Observable) (any, error) {
		calls++
		return e.Get("x"), nil
	})
	reg.OnDestroy(func(e *entity.Entity) { memo.Evict(e) })

	a := reg.New(map[string]any{"x": 1})
	b := reg.New(map[string]any{"x": 2})

	memo.Compute(a)
	memo.Compute(b)
	assert.Equal(t, 2, memo.Size())

	reg.Destroy(a)
	assert.Equal(t, 1, memo.Size())

	// a fresh entity with equal content gets its own slot
	c := reg.New(map[string]any{"x": 1})
	v, err := memo.Compute(c)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, calls)

	reg.Destroy(b)
	reg.Destroy(c)
	assert.Equal(t, 0, memo.Size())
}
