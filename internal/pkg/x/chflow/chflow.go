// Package chflow provides context-aware helpers for channel receive and
// send operations, so goroutines blocked on a channel still honor
// cancellation and deadlines.
package chflow

import "context"

// Receive blocks until a value arrives on ch or ctx is canceled.
// The boolean result is false when the context ended or the channel was
// closed; the value is the zero value in that case.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send blocks until data is accepted by ch or ctx is canceled.
// It reports whether the send actually happened.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
