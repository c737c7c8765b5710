package synth

import (
	"fmt"

	"github.com/delaneyj/synthparty/stream"
)

// Dependency declares one trigger for invalidating a derived property.
// The four shapes below are the whole closed set; registration rejects
// anything else up front, so subscription logic can switch over them
// exhaustively.
type Dependency interface {
	isDependency()
}

// KeyDependency fires when the entity's own stored property with that
// name changes.
type KeyDependency string

// GlobalStreamFactory supplies a stream unrelated to any entity. The
// factory runs each time a view activates.
type GlobalStreamFactory func() stream.Stream

// EntityStreamFactory supplies a stream derived from the specific
// entity under the view. The factory runs each time a view activates.
type EntityStreamFactory func(e Observable) stream.Stream

// RawStream is an already-constructed stream used directly.
type RawStream struct {
	stream.Stream
}

func (KeyDependency) isDependency()       {}
func (GlobalStreamFactory) isDependency() {}
func (EntityStreamFactory) isDependency() {}
func (RawStream) isDependency()           {}

// ArgumentError reports a dependency declaration that matches none of
// the permitted shapes. It carries the offending value so callers can
// see exactly what they passed.
type ArgumentError struct {
	Value any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("synth: invalid dependency %v (%T): want a key name, a stream factory, or a stream", e.Value, e.Value)
}

// coerceDependency maps the raw dynamic spellings onto the closed sum
// and screens out empty descriptors.
func coerceDependency(v any) (Dependency, error) {
	switch d := v.(type) {
	case Dependency:
		return validateDependency(d)
	case string:
		return KeyDependency(d), nil
	case func() stream.Stream:
		if d == nil {
			return nil, &ArgumentError{Value: v}
		}
		return GlobalStreamFactory(d), nil
	case func(Observable) stream.Stream:
		if d == nil {
			return nil, &ArgumentError{Value: v}
		}
		return EntityStreamFactory(d), nil
	case stream.Stream:
		return RawStream{d}, nil
	default:
		return nil, &ArgumentError{Value: v}
	}
}

func validateDependency(d Dependency) (Dependency, error) {
	switch dd := d.(type) {
	case KeyDependency:
		return d, nil
	case GlobalStreamFactory:
		if dd == nil {
			return nil, &ArgumentError{Value: d}
		}
		return d, nil
	case EntityStreamFactory:
		if dd == nil {
			return nil, &ArgumentError{Value: d}
		}
		return d, nil
	case RawStream:
		if dd.Stream == nil {
			return nil, &ArgumentError{Value: d}
		}
		return d, nil
	default:
		return nil, &ArgumentError{Value: d}
	}
}
