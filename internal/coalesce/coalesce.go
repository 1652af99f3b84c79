// Package coalesce collapses bursts of notifications into one delivery.
//
// An Emitter holds at most one pending payload. Scheduling while pending
// replaces the payload (last write wins). When the emitter first goes
// pending it calls request so the host can arrange a Flush on its next
// frame; with no request func the payload is delivered synchronously.
//
// Emitters are not safe for concurrent use. They belong to the goroutine
// running the host's update loop.
package coalesce

type Emitter[T any] struct {
	fn      func(T)
	request func()

	pending bool
	payload T
}

func New[T any](fn func(T), request func()) *Emitter[T] {
	return &Emitter[T]{fn: fn, request: request}
}

// Schedule records payload for the next flush. It reports whether this call
// moved the emitter from idle to pending.
func (e *Emitter[T]) Schedule(payload T) bool {
	if e.request == nil {
		if e.fn != nil {
			e.fn(payload)
		}
		return false
	}
	e.payload = payload
	first := !e.pending
	e.pending = true
	if first {
		e.request()
	}
	return first
}

// Flush delivers the pending payload, if any.
func (e *Emitter[T]) Flush() bool {
	if !e.pending {
		return false
	}
	payload := e.payload
	var zero T
	e.payload = zero
	e.pending = false
	if e.fn != nil {
		e.fn(payload)
	}
	return true
}

// Cancel drops the pending payload without delivering it.
func (e *Emitter[T]) Cancel() {
	var zero T
	e.payload = zero
	e.pending = false
}

func (e *Emitter[T]) Pending() bool {
	return e.pending
}
