package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/internhub/marketplace-web/internal/errors"
)

type recorded struct {
	kind  string
	name  string
	value float64
	tags  map[string]string
}

type recordingSink struct {
	mu   sync.Mutex
	seen []recorded
}

func (r *recordingSink) add(kind, name string, v float64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, recorded{kind, name, v, tags})
}

func (r *recordingSink) Count(name string, value int64, tags map[string]string) {
	r.add("count", name, float64(value), tags)
}

func (r *recordingSink) Gauge(name string, value float64, tags map[string]string) {
	r.add("gauge", name, value, tags)
}

func (r *recordingSink) Timing(name string, value time.Duration, tags map[string]string) {
	r.add("timing", name, float64(value), tags)
}

func TestEmitUpstreamCall_Success(t *testing.T) {
	sink := &recordingSink{}
	EmitUpstreamCall(sink, UpstreamCall{Operation: "internships.list", Status: 200, Duration: 5 * time.Millisecond})

	require.Len(t, sink.seen, 2)
	assert.Equal(t, NameUpstreamRequest, sink.seen[0].name)
	assert.Equal(t, map[string]string{"operation": "internships.list", "status_class": "2xx", "result": ResultSuccess}, sink.seen[0].tags)
	assert.Equal(t, NameUpstreamDuration, sink.seen[1].name)
}

func TestEmitUpstreamCall_ErrorClassified(t *testing.T) {
	sink := &recordingSink{}
	err := apperrors.FromTransport(errors.New("dial tcp: refused"))
	EmitUpstreamCall(sink, UpstreamCall{Operation: "users.profile", Err: err})

	require.Len(t, sink.seen, 1, "no timing without a duration")
	tags := sink.seen[0].tags
	assert.Equal(t, ResultError, tags["result"])
	assert.Equal(t, "none", tags["status_class"])
	assert.NotEmpty(t, tags["error_class"])
}

func TestEmitUpstreamCall_NilSink(t *testing.T) {
	assert.NotPanics(t, func() { EmitUpstreamCall(nil, UpstreamCall{Operation: "x"}) })
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(204))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(503))
	assert.Equal(t, "none", StatusClass(0))
}

func TestFanout(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	assert.Nil(t, NewFanout(nil, nil))
	assert.Same(t, a, NewFanout(nil, a))

	f := NewFanout(a, b)
	f.Count("x", 1, map[string]string{"k": "v"})
	f.Gauge("g", 2, nil)
	f.Timing("t", time.Second, nil)
	assert.Len(t, a.seen, 3)
	assert.Len(t, b.seen, 3)
}

func TestEmitSessionInitAndViewLoad(t *testing.T) {
	sink := &recordingSink{}
	EmitSessionInit(sink, "identified")
	EmitViewLoad(sink, "internships", ResultSuccess, time.Millisecond)
	require.Len(t, sink.seen, 3)
	assert.Equal(t, "identified", sink.seen[0].tags["outcome"])
	assert.Equal(t, "internships", sink.seen[1].tags["view"])
}
