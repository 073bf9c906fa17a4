// Package debounce re-emits a changing value only after it has been stable
// for a quiet period. A burst of changes produces exactly one emission, timed
// from the last change. There is no maximum wait: an input that never stops
// changing never emits.
package debounce

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Token identifies one scheduled emission. Every Set supersedes all tokens
// handed out before it.
type Token uint64

// Outcome describes what Settle did with a token
type Outcome int

const (
	// Stale means a newer change superseded the token; nothing is emitted.
	Stale Outcome = iota
	// Unchanged means the value settled but equals the previous output.
	Unchanged
	// Changed means the value settled and differs from the previous output.
	Changed
)

// Msg is delivered to a Bubble Tea program when a scheduled emission fires
type Msg[T any] struct {
	Token Token
	Value T
}

// Value tracks the latest input and the last emitted output for use inside a
// single-threaded update loop. It is not safe for concurrent use.
type Value[T comparable] struct {
	current Token
	pending T
	output  T
}

// NewValue returns a Value whose input and output both start at initial
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{pending: initial, output: initial}
}

// Set records a new input and returns the token that may emit it
func (v *Value[T]) Set(in T) Token {
	v.current++
	v.pending = in
	return v.current
}

// Pending returns the latest input
func (v *Value[T]) Pending() T {
	return v.pending
}

// Output returns the last emitted value
func (v *Value[T]) Output() T {
	return v.output
}

// Settle emits the pending input if tok is still the current token
func (v *Value[T]) Settle(tok Token) (T, Outcome) {
	if tok != v.current {
		var zero T
		return zero, Stale
	}
	if v.pending == v.output {
		return v.output, Unchanged
	}
	v.output = v.pending
	return v.output, Changed
}

// Tick schedules delivery of Msg{tok, in} after delay. The command runs off
// the update loop, so even a zero delay is never delivered synchronously.
func Tick[T any](delay time.Duration, tok Token, in T) tea.Cmd {
	if delay < 0 {
		delay = 0
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return Msg[T]{Token: tok, Value: in}
	})
}

// Debouncer is a goroutine-safe timer-based debouncer for callers outside a
// Bubble Tea program. emit runs on the timer goroutine.
type Debouncer[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
	emit  func(T)
}

// New creates a Debouncer that calls emit with the last value set once delay
// has passed without another Set.
func New[T any](delay time.Duration, emit func(T)) *Debouncer[T] {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T]{delay: delay, emit: emit}
}

// Set schedules emission of v and cancels any emission not yet fired
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A timer that fired while Set was replacing it loses here
		current := gen == d.gen
		d.mu.Unlock()
		if current {
			d.emit(v)
		}
	})
}

// Stop cancels any pending emission
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
