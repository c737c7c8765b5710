package stream

type listener struct {
	onBatch func(batch []Record)
	onError func(err error)
	onDone  func()
}

// Broadcast is a multi-listener stream with lazy activation. The
// onActive hook runs when the listener count goes from zero to one, the
// onIdle hook when it returns to zero. An error from onIdle is returned
// by the stop call that emptied the stream, so teardown failures land on
// the caller that detached last.
//
// Events reach listeners synchronously, in attach order.
type Broadcast struct {
	listeners []*listener
	onActive  func()
	onIdle    func() error
	closed    bool
}

// NewBroadcast builds an idle broadcast stream. Either hook may be nil.
func NewBroadcast(onActive func(), onIdle func() error) *Broadcast {
	return &Broadcast{
		onActive: onActive,
		onIdle:   onIdle,
	}
}

func (b *Broadcast) Listen(onBatch func(batch []Record), onError func(err error), onDone func()) (stop func() error) {
	if b.closed {
		if onDone != nil {
			onDone()
		}
		return func() error { return nil }
	}

	l := &listener{onBatch: onBatch, onError: onError, onDone: onDone}
	b.listeners = append(b.listeners, l)
	if len(b.listeners) == 1 && b.onActive != nil {
		b.onActive()
	}

	return func() error {
		for i, got := range b.listeners {
			if got != l {
				continue
			}
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			if len(b.listeners) == 0 && b.onIdle != nil {
				return b.onIdle()
			}
			return nil
		}
		// Already canceled, or the stream closed out from under us.
		return nil
	}
}

// snapshot freezes the listener list so callbacks that attach or detach
// listeners mid-delivery see the change from the next event on.
func (b *Broadcast) snapshot() []*listener {
	return append([]*listener(nil), b.listeners...)
}

// Add delivers one batch to every current listener.
func (b *Broadcast) Add(batch []Record) {
	if b.closed {
		panic("add on closed broadcast stream")
	}
	for _, l := range b.snapshot() {
		if l.onBatch != nil {
			l.onBatch(batch)
		}
	}
}

// AddError delivers a stream error to every current listener. The
// stream stays open; errors are events, not termination.
func (b *Broadcast) AddError(err error) {
	if b.closed {
		panic("add on closed broadcast stream")
	}
	for _, l := range b.snapshot() {
		if l.onError != nil {
			l.onError(err)
		}
	}
}

// Close completes the stream. Every listener hears done, further Listen
// calls hear done immediately, and Add panics. If listeners were
// attached the onIdle hook still runs so owned resources are released;
// its error has no caller to land on and is dropped.
func (b *Broadcast) Close() {
	if b.closed {
		return
	}
	b.closed = true
	departing := b.listeners
	b.listeners = nil
	for _, l := range departing {
		if l.onDone != nil {
			l.onDone()
		}
	}
	if len(departing) > 0 && b.onIdle != nil {
		b.onIdle()
	}
}

// NumListeners reports the current listener count.
func (b *Broadcast) NumListeners() int {
	return len(b.listeners)
}

// IsClosed reports whether Close has run.
func (b *Broadcast) IsClosed() bool {
	return b.closed
}

var closedStream = &Broadcast{closed: true}

// Closed returns the shared already-completed stream. Listening to it
// delivers done immediately and nothing else, ever.
func Closed() Stream {
	return closedStream
}
