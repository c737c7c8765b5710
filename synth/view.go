package synth

import (
	"fmt"

	"github.com/delaneyj/synthparty/stream"
)

// View is the observable facade over one entity's derived properties.
// Real views and the shared empty view satisfy it identically.
type View interface {
	// ContainsKey reports whether key is registered.
	ContainsKey(key string) bool
	// Read evaluates the registration for key against the entity.
	// Every call recomputes; unknown keys read as nil. A compute
	// failure propagates to the caller and caches nothing anywhere.
	Read(key string) (any, error)
	// Changes is a broadcast stream of change record batches. It
	// forwards the entity's own records and emits one synthetic
	// record, nil old and new values, per dependency event.
	Changes() stream.Stream
}

var (
	_ View = (*view)(nil)
	_ View = (*emptyView)(nil)
)

// NewView builds a view over entity e and the shared registration
// table. Views are cheap; make as many per entity as you like. When
// the table is empty the shared empty view is returned instead, so no
// subscription machinery is built for nothing.
func NewView(e Observable, regs Table) View {
	if len(regs) == 0 {
		return Empty()
	}
	v := &view{entity: e, regs: regs}
	v.changes = stream.NewBroadcast(v.activate, v.deactivate)
	return v
}

type view struct {
	entity  Observable
	regs    Table
	changes *stream.Broadcast
	stops   []func() error
}

func (v *view) ContainsKey(key string) bool {
	_, ok := v.regs[key]
	return ok
}

func (v *view) Read(key string) (any, error) {
	reg, ok := v.regs[key]
	if !ok {
		return nil, nil
	}
	return reg.Compute(v.entity)
}

func (v *view) Changes() stream.Stream {
	return v.changes
}

// activate runs when the first listener attaches: one forwarding
// subscription on the entity's own stream, then one subscription per
// declared dependency. Leaving the last listener tears all of it down
// again, so an idle view holds no subscriptions at all and
// re-activating starts from scratch.
func (v *view) activate() {
	entityChanges := v.entity.Changes()
	v.stops = append(v.stops, entityChanges.Listen(v.changes.Add, v.changes.AddError, v.changes.Close))
	for key, reg := range v.regs {
		for _, dep := range reg.Dependencies() {
			// The entity stream may have completed during
			// subscription; everything is torn down already then.
			if v.changes.IsClosed() {
				return
			}
			v.watch(key, dep)
		}
	}
}

// watch subscribes one dependency of the registration under key. Any
// event on the dependency stream surfaces as a one-record batch naming
// the registered key; the value is not recomputed here, readers pull it
// on the next Read.
func (v *view) watch(key string, dep Dependency) {
	var src stream.Stream
	switch d := dep.(type) {
	case KeyDependency:
		src = stream.KeyFilter(v.entity.Changes(), string(d))
	case GlobalStreamFactory:
		src = d()
	case EntityStreamFactory:
		src = d(v.entity)
	case RawStream:
		src = d.Stream
	default:
		panic(fmt.Sprintf("unvalidated dependency %T on key %q", dep, key))
	}
	stop := src.Listen(func([]stream.Record) {
		v.changes.Add([]stream.Record{{Key: key}})
	}, v.changes.AddError, nil)
	v.stops = append(v.stops, stop)
}

// deactivate runs when the last listener detaches. Every stop is
// attempted even if one fails; the first error surfaces from the stop
// call that emptied the stream.
func (v *view) deactivate() error {
	var firstErr error
	for _, stop := range v.stops {
		if err := stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	v.stops = v.stops[:0]
	return firstErr
}

type emptyView struct{}

var sharedEmpty = &emptyView{}

// Empty returns the shared view used for entities with no registered
// derived properties: no keys, nil reads, an already-completed change
// stream, and no bookkeeping. Always the same instance.
func Empty() View {
	return sharedEmpty
}

func (*emptyView) ContainsKey(string) bool  { return false }
func (*emptyView) Read(string) (any, error) { return nil, nil }
func (*emptyView) Changes() stream.Stream   { return stream.Closed() }
