// Package resource implements the state machine behind every list and detail view:
// idle, loading, then ready or error, with last-issued-request-wins loads and
// write-then-patch mutations.
package resource

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the top-level state of a view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrSuperseded is returned by Load when a newer load was issued before this one completed.
	ErrSuperseded = errors.New("resource: load superseded by a newer request")
	// ErrNotReady is returned by Mutate when the view has no loaded data to patch.
	ErrNotReady = errors.New("resource: view not ready")
)

// Fetch retrieves the full item list for a view.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Patch transforms the cached items after a successful mutation.
type Patch[T any] func(items []T) []T

// Snapshot is a point-in-time copy of a view.
type Snapshot[T any] struct {
	State    State
	Items    []T
	Err      error
	Seq      uint64
	LoadedAt time.Time
}

// Empty reports whether the view is ready with no items.
func (s Snapshot[T]) Empty() bool { return s.State == StateReady && len(s.Items) == 0 }

// View holds the fetched data of one view.
// Concurrency: methods are safe for concurrent use.
type View[T any] struct {
	mu       sync.Mutex
	state    State
	items    []T
	err      error
	seq      uint64
	cancel   context.CancelFunc
	settled  chan struct{} // closed when the latest load finishes
	loadedAt time.Time
	now      func() time.Time
}

// New returns an idle view.
func New[T any]() *View[T] {
	return &View[T]{now: time.Now}
}

// Load fetches the items. A load cancels any load still in flight for this
// view; if a newer load is issued while fetch runs, its result is discarded
// and ErrSuperseded is returned. On failure the cached items are dropped.
func (v *View[T]) Load(ctx context.Context, fetch Fetch[T]) (Snapshot[T], error) {
	v.mu.Lock()
	v.seq++
	token := v.seq
	if v.cancel != nil {
		v.cancel()
	}
	lctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = StateLoading
	if v.settled == nil {
		v.settled = make(chan struct{})
	}
	v.mu.Unlock()

	items, err := fetch(lctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.seq {
		cancel()
		return v.snapshotLocked(), ErrSuperseded
	}
	cancel()
	v.cancel = nil
	close(v.settled)
	v.settled = nil
	if err != nil {
		v.state = StateError
		v.items = nil
		v.err = err
		return v.snapshotLocked(), err
	}
	if items == nil {
		items = []T{}
	}
	v.state = StateReady
	v.items = items
	v.err = nil
	v.loadedAt = v.now()
	return v.snapshotLocked(), nil
}

// Await blocks until no load is in flight and returns the resulting
// snapshot along with the error of the load that produced it.
func (v *View[T]) Await(ctx context.Context) (Snapshot[T], error) {
	for {
		v.mu.Lock()
		ch := v.settled
		if ch == nil {
			snap := v.snapshotLocked()
			v.mu.Unlock()
			return snap, snap.Err
		}
		v.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return v.Snapshot(), ctx.Err()
		}
	}
}

// Mutate runs call against the server and, only if it succeeds, applies patch
// to the cached items. The top-level state never changes.
func (v *View[T]) Mutate(ctx context.Context, call func(ctx context.Context) error, patch Patch[T]) error {
	v.mu.Lock()
	if v.state != StateReady {
		v.mu.Unlock()
		return ErrNotReady
	}
	v.mu.Unlock()

	if err := call(ctx); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateReady && patch != nil {
		v.items = patch(v.items)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Close cancels any in-flight load.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *View[T]) snapshotLocked() Snapshot[T] {
	var items []T
	if v.items != nil {
		items = make([]T, len(v.items))
		copy(items, v.items)
	}
	return Snapshot[T]{State: v.state, Items: items, Err: v.err, Seq: v.seq, LoadedAt: v.loadedAt}
}
