package synth_test

import (
	"testing"

	"github.com/delaneyj/synthparty/stream"
	"github.com/delaneyj/synthparty/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a typed constructor computes from the named keys and declares them as deps
func TestDerived2(t *testing.T) {
	reg := synth.Derived2("first", "last", func(first, last string) any {
		return first + " " + last
	})

	assert.Equal(t, []synth.Dependency{
		synth.KeyDependency("first"),
		synth.KeyDependency("last"),
	}, reg.Dependencies())

	e := newTestEntity(map[string]any{"first": "Ann", "last": "Lee"})
	got, err := reg.Compute(e)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", got)
}

func TestDerived1InView(t *testing.T) {
	e := newTestEntity(map[string]any{"birthYear": 1982})
	v := synth.NewView(e, synth.Table{
		"age": synth.Derived1("birthYear", func(birthYear int) any {
			return 2026 - birthYear
		}),
	})

	got, err := v.Read("age")
	require.NoError(t, err)
	assert.Equal(t, 44, got)

	synthetics := 0
	v.Changes().Listen(func(batch []stream.Record) {
		for _, r := range batch {
			if r.Key == "age" {
				synthetics++
			}
		}
	}, nil, nil)

	e.set("birthYear", 1983)
	assert.Equal(t, 1, synthetics)

	got, err = v.Read("age")
	require.NoError(t, err)
	assert.Equal(t, 43, got)
}

// an unset stored property is a compute error, not a zero value
func TestDerivedUnsetProperty(t *testing.T) {
	reg := synth.Derived1("missing", func(x int) any { return x })

	_, err := reg.Compute(newTestEntity(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}

// a stored value of the wrong static type is a compute error naming both types
func TestDerivedTypeMismatch(t *testing.T) {
	reg := synth.Derived1("x", func(x int) any { return x })

	_, err := reg.Compute(newTestEntity(map[string]any{"x": "not an int"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), "int")
}

func TestDerived3(t *testing.T) {
	reg := synth.Derived3("a", "b", "c", func(a, b, c int) any {
		return a + b + c
	})

	got, err := reg.Compute(newTestEntity(map[string]any{"a": 1, "b": 2, "c": 3}))
	require.NoError(t, err)
	assert.Equal(t, 6, got)
	assert.Len(t, reg.Dependencies(), 3)
}
