package service

import (
	"container/list"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	"github.com/internhub/marketplace-web/internal/observability/metrics"
	"github.com/internhub/marketplace-web/internal/observability/statsd"
)

// ViewKey identifies one view of one browser session. Parameterised views
// append the parameter after a colon ("org.applications:12").
type ViewKey struct {
	Session string
	Name    string
}

func (k ViewKey) String() string { return k.Session + "|" + k.Name }

type closer interface{ Close() }

type viewEntry struct {
	key    ViewKey
	view   closer
	expiry time.Time
}

// ViewRegistryConfig groups constructor options for ViewRegistry.
type ViewRegistryConfig struct {
	Capacity int
	// TTL is a sliding idle timeout; <= 0 disables expiry.
	TTL     time.Duration
	Now     func() time.Time
	Metrics statsd.Sink
}

// DefaultViewRegistryConfig returns sensible defaults.
func DefaultViewRegistryConfig() ViewRegistryConfig {
	return ViewRegistryConfig{Capacity: 2048, TTL: 15 * time.Minute, Now: time.Now}
}

// ViewRegistry holds resource views per (session, view name) in an LRU with
// per-entry idle TTL. Evicted views have their in-flight load cancelled.
// Concurrency: methods are safe for concurrent use.
type ViewRegistry struct {
	mu    sync.Mutex
	cap   int
	ttl   time.Duration
	ll    *list.List // front = most-recently used
	items map[ViewKey]*list.Element
	now   func() time.Time
	sink  statsd.Sink
}

// NewViewRegistry creates a ViewRegistry.
func NewViewRegistry(cfg ViewRegistryConfig) *ViewRegistry {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 2048
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ViewRegistry{
		cap:   capacity,
		ttl:   cfg.TTL,
		ll:    list.New(),
		items: make(map[ViewKey]*list.Element, capacity),
		now:   nowFn,
		sink:  cfg.Metrics,
	}
}

// ViewFor returns the view for key, creating an idle one when absent or expired.
func ViewFor[T any](r *ViewRegistry, key ViewKey) *resource.View[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.items[key]; ok {
		ent, _ := el.Value.(*viewEntry)
		if v, typed := ent.view.(*resource.View[T]); typed && !r.isExpired(ent) {
			r.touch(el, ent)
			r.count(metrics.NameViewCacheLookup, "hit")
			return v
		}
		r.removeElement(el)
	}
	r.count(metrics.NameViewCacheLookup, "miss")

	v := resource.New[T]()
	el := r.ll.PushFront(&viewEntry{key: key, view: v})
	r.items[key] = el
	r.touch(el, el.Value.(*viewEntry))
	r.evictIfNeeded()
	r.reportSize()
	return v
}

// existingView returns the view for key only if it is already registered.
func existingView[T any](r *ViewRegistry, key ViewKey) (*resource.View[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.items[key]
	if !ok {
		return nil, false
	}
	ent, _ := el.Value.(*viewEntry)
	v, typed := ent.view.(*resource.View[T])
	if !typed || r.isExpired(ent) {
		return nil, false
	}
	return v, true
}

// Sync returns the view's data. It loads when refresh is set or nothing
// usable is cached; paging and filtering reuse the cached items otherwise.
func Sync[T any](
	ctx context.Context,
	r *ViewRegistry,
	key ViewKey,
	refresh bool,
	fetch resource.Fetch[T],
) (resource.Snapshot[T], error) {
	v := ViewFor[T](r, key)
	if snap := v.Snapshot(); !refresh && snap.State == resource.StateReady {
		return snap, nil
	}

	start := r.now()
	snap, err := v.Load(ctx, fetch)
	result := metrics.ResultSuccess
	switch {
	case errors.Is(err, resource.ErrSuperseded):
		result = metrics.ResultNoop
	case err != nil:
		result = metrics.ResultError
	}
	name, _, _ := strings.Cut(key.Name, ":")
	metrics.EmitViewLoad(r.sink, name, result, r.now().Sub(start))

	if errors.Is(err, resource.ErrSuperseded) {
		// the newer load answers for both requests
		return v.Await(ctx)
	}
	return snap, err
}

// mutate runs call and patches the view for key when it holds loaded data.
// Without a loaded view the call still runs.
func mutate[T any](
	ctx context.Context,
	r *ViewRegistry,
	key ViewKey,
	call func(ctx context.Context) error,
	patch resource.Patch[T],
) error {
	if v, ok := existingView[T](r, key); ok {
		err := v.Mutate(ctx, call, patch)
		if !errors.Is(err, resource.ErrNotReady) {
			return err
		}
	}
	return call(ctx)
}

// patchOnly applies patch to the view for key after a write that already succeeded.
func patchOnly[T any](ctx context.Context, r *ViewRegistry, key ViewKey, patch resource.Patch[T]) {
	if v, ok := existingView[T](r, key); ok {
		_ = v.Mutate(ctx, func(context.Context) error { return nil }, patch)
	}
}

// cachedInternship looks an internship up in the session's loaded listing.
func cachedInternship(r *ViewRegistry, sessionID string, id int64) (*model.Internship, bool) {
	v, ok := existingView[model.Internship](r, ViewKey{Session: sessionID, Name: ViewInternships})
	if !ok {
		return nil, false
	}
	snap := v.Snapshot()
	if snap.State != resource.StateReady {
		return nil, false
	}
	for i := range snap.Items {
		if snap.Items[i].ID == id {
			in := snap.Items[i]
			return &in, true
		}
	}
	return nil, false
}

// Invalidate drops one view so its next visit fetches again.
func (r *ViewRegistry) Invalidate(key ViewKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if el, ok := r.items[key]; ok {
		r.removeElement(el)
		r.reportSize()
	}
}

// DropSession removes every view of a session and returns how many were dropped.
func (r *ViewRegistry) DropSession(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key, el := range r.items {
		if key.Session == sessionID {
			r.removeElement(el)
			n++
		}
	}
	if n > 0 {
		r.reportSize()
	}
	return n
}

// Len returns the current number of registered views.
func (r *ViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ll.Len()
}

// Helpers (caller must hold r.mu).
func (r *ViewRegistry) isExpired(e *viewEntry) bool {
	if e.expiry.IsZero() {
		return false
	}
	return r.now().After(e.expiry)
}

func (r *ViewRegistry) touch(el *list.Element, e *viewEntry) {
	if r.ttl > 0 {
		e.expiry = r.now().Add(r.ttl)
	}
	r.ll.MoveToFront(el)
}

func (r *ViewRegistry) removeElement(el *list.Element) {
	r.ll.Remove(el)
	if ent, ok := el.Value.(*viewEntry); ok {
		delete(r.items, ent.key)
		ent.view.Close()
	}
}

func (r *ViewRegistry) evictIfNeeded() {
	for r.ll.Len() > r.cap {
		el := r.ll.Back()
		if el == nil {
			return
		}
		r.removeElement(el)
		r.count(metrics.NameViewCacheEviction, "")
	}
}

func (r *ViewRegistry) count(name, result string) {
	if r.sink == nil {
		return
	}
	var tags map[string]string
	if result != "" {
		tags = map[string]string{"result": result}
	}
	r.sink.Count(name, 1, tags)
}

func (r *ViewRegistry) reportSize() {
	if r.sink != nil {
		r.sink.Gauge(metrics.NameViewCacheSize, float64(r.ll.Len()), nil)
	}
}
