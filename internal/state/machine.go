// Package state implements the per-operation lifecycle machine: one instance
// per (description, content kind), tracking idle/loading/success/error with
// at most one in-flight fetch.
package state

import (
	"context"
	"errors"
	"sync"
)

// Phase is the lifecycle position of a Machine.
type Phase int

const (
	// Idle means nothing has been fetched since creation or the last reset.
	Idle Phase = iota
	// Loading means a fetch is in flight.
	Loading
	// Succeeded means data is cached; triggering again reuses it.
	Succeeded
	// Failed means the last fetch errored; triggering again refetches.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ErrInFlight is returned by Trigger when a fetch is already running on this
// machine. The caller treats it as a no-op, not a failure.
var ErrInFlight = errors.New("operation already in flight")

// Machine holds the state of one generation operation. Machines for
// different descriptions or kinds are independent and may run concurrently;
// each individual machine permits at most one in-flight fetch.
type Machine[T any] struct {
	mu      sync.Mutex
	phase   Phase
	gen     uint64 // bumped by Reset so stale completions are dropped
	data    T
	message string
}

// New returns a machine in the Idle phase.
func New[T any]() *Machine[T] {
	return &Machine[T]{}
}

// Trigger drives the machine. From Succeeded it returns the cached data
// without fetching. From Loading it returns ErrInFlight. From Idle or Failed
// it runs fetch synchronously and records the outcome, unless a Reset
// happened while the fetch was in flight, in which case the outcome is
// discarded and the machine stays Idle.
func (m *Machine[T]) Trigger(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	m.mu.Lock()
	switch m.phase {
	case Succeeded:
		data := m.data
		m.mu.Unlock()
		return data, nil
	case Loading:
		m.mu.Unlock()
		var zero T
		return zero, ErrInFlight
	}
	m.phase = Loading
	m.message = ""
	gen := m.gen
	m.mu.Unlock()

	data, err := fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		// Reset during the fetch: the view moved on, drop the outcome.
		var zero T
		if err != nil {
			return zero, err
		}
		return data, nil
	}
	if err != nil {
		m.phase = Failed
		m.message = err.Error()
		var zero T
		return zero, err
	}
	m.phase = Succeeded
	m.data = data
	return data, nil
}

// Reset returns the machine to Idle and discards cached data. Permitted from
// any phase; an in-flight fetch keeps running but its outcome is dropped.
func (m *Machine[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.phase = Idle
	m.gen++
	m.data = zero
	m.message = ""
}

// Phase reports the current lifecycle position.
func (m *Machine[T]) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Data returns the cached payload and whether the machine is in Succeeded.
func (m *Machine[T]) Data() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != Succeeded {
		var zero T
		return zero, false
	}
	return m.data, true
}

// Message returns the error message of the last failed fetch, or "".
func (m *Machine[T]) Message() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.message
}
