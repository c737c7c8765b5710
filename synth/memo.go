package synth

// Memo caches one compute function's result per entity so it runs at
// most once per entity. Entities are compared by identity, never by
// content, so two equal-looking entities get separate slots.
//
// The map holds its entity keys strongly. Wire Evict into entity
// teardown (entity.Registry.OnDestroy does this) or the entry outlives
// the entity.
type Memo struct {
	fn     ComputeFunc
	values map[Observable]any
}

// NewMemo wraps fn. Each Memo has its own independent cache.
func NewMemo(fn ComputeFunc) *Memo {
	return &Memo{
		fn:     fn,
		values: map[Observable]any{},
	}
}

// Compute returns the cached value for e, running fn only on the first
// call. A failure propagates and caches nothing, so the next call
// retries. nil is a legitimate cached value; the presence of the entry,
// not the value, decides hit or miss.
func (m *Memo) Compute(e Observable) (any, error) {
	if v, ok := m.values[e]; ok {
		return v, nil
	}
	v, err := m.fn(e)
	if err != nil {
		return nil, err
	}
	m.values[e] = v
	return v, nil
}

// Evict drops the cached value for e, if any.
func (m *Memo) Evict(e Observable) {
	delete(m.values, e)
}

// Size reports how many entities currently have a cached value.
func (m *Memo) Size() int {
	return len(m.values)
}
