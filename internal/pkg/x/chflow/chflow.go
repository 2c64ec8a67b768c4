// Package chflow holds small channel helpers that give up when a context is
// done, so goroutines blocked on a channel can always be stopped.
package chflow

import "context"

// Receive blocks until a value arrives on ch or ctx is done. ok is false on
// cancellation or when ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// Send blocks until v is delivered on ch or ctx is done, and reports whether
// v was delivered.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// Drain discards every value already buffered in ch without blocking and
// returns how many were discarded.
func Drain[T any](ch <-chan T) int {
	n := 0
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}

// Lines feeds the values produced by next into a channel until next reports
// false or ctx is done. The channel is closed when feeding stops.
func Lines[T any](ctx context.Context, next func() (T, bool)) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		for {
			v, ok := next()
			if !ok || !Send(ctx, ch, v) {
				return
			}
		}
	}()

	return ch
}
