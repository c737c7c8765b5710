package synth

import (
	"errors"
	"fmt"
)

// Registration binds one derived property's compute function to the
// dependencies that invalidate it. Immutable once built.
type Registration struct {
	compute ComputeFunc
	deps    []Dependency
}

// NewRegistration validates every dependency eagerly, never at
// subscribe time. Dependencies may be typed Dependency values or their
// raw spellings: a property key string, a func() stream.Stream, a
// func(Observable) stream.Stream, or a stream.Stream. Any other value,
// nil included, fails with an ArgumentError naming it.
func NewRegistration(compute ComputeFunc, deps ...any) (*Registration, error) {
	if compute == nil {
		return nil, errors.New("synth: registration needs a compute func")
	}
	r := &Registration{compute: compute}
	if len(deps) == 0 {
		return r, nil
	}
	r.deps = make([]Dependency, len(deps))
	for i, raw := range deps {
		d, err := coerceDependency(raw)
		if err != nil {
			return nil, err
		}
		r.deps[i] = d
	}
	return r, nil
}

// keysRegistration builds a registration whose dependencies are all key
// dependencies. Keys always validate, so no error path. Used by the
// generated Derived constructors.
func keysRegistration(compute ComputeFunc, keys ...string) *Registration {
	deps := make([]Dependency, len(keys))
	for i, k := range keys {
		deps[i] = KeyDependency(k)
	}
	return &Registration{compute: compute, deps: deps}
}

// Compute evaluates the derived value against e.
func (r *Registration) Compute(e Observable) (any, error) {
	return r.compute(e)
}

// Dependencies returns the validated descriptors in declaration order.
// Callers must not mutate the returned slice.
func (r *Registration) Dependencies() []Dependency {
	return r.deps
}

// Table maps derived property keys to their registrations. Callers
// build one up front, typically at startup, then share it read-only
// across any number of views and entities.
type Table map[string]*Registration

// property reads key from e and asserts its static type. The generated
// Derived constructors compute through this; an unset or differently
// typed property surfaces as a compute error on Read.
func property[T any](e Observable, key string) (T, error) {
	var zero T
	v := e.Get(key)
	if v == nil {
		return zero, fmt.Errorf("synth: property %q is unset", key)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("synth: property %q is %T, want %T", key, v, zero)
	}
	return t, nil
}
