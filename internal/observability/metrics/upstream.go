package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/internhub/marketplace-web/internal/observability/errors"
	"github.com/internhub/marketplace-web/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// Metric names shared by the sinks.
const (
	NameUpstreamRequest   = "upstream.request"
	NameUpstreamDuration  = "upstream.duration"
	NameSessionInit       = "session.initialize"
	NameViewLoad          = "view.load"
	NameViewCacheSize     = "view_cache.size"
	NameViewCacheLookup   = "view_cache.lookup"
	NameViewCacheEviction = "view_cache.evictions"
)

// UpstreamCall captures one outbound marketplace API call.
type UpstreamCall struct {
	Operation string
	// Status is the HTTP status, 0 when no response arrived.
	Status   int
	Duration time.Duration
	Err      error
}

// EmitUpstreamCall emits standardised outbound call metrics.
func EmitUpstreamCall(sink statsd.Sink, in UpstreamCall) {
	if sink == nil {
		return
	}

	result := ResultSuccess
	if in.Err != nil {
		result = ResultError
	}
	tags := map[string]string{
		"operation":    in.Operation,
		"status_class": StatusClass(in.Status),
		"result":       result,
	}
	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count(NameUpstreamRequest, 1, tags)

	if in.Duration > 0 {
		sink.Timing(NameUpstreamDuration, in.Duration, map[string]string{"operation": in.Operation})
	}
}

// EmitSessionInit counts how a session initialisation concluded
// ("validated", "cleared", "superseded", "pending").
func EmitSessionInit(sink statsd.Sink, outcome string) {
	if sink == nil {
		return
	}
	sink.Count(NameSessionInit, 1, map[string]string{"outcome": outcome})
}

// EmitViewLoad records a resource view load.
func EmitViewLoad(sink statsd.Sink, view, result string, d time.Duration) {
	if sink == nil {
		return
	}
	tags := map[string]string{"view": view, "result": result}
	sink.Count(NameViewLoad, 1, tags)
	if d > 0 {
		sink.Timing(NameViewLoad, d, CloneTags(tags))
	}
}

// StatusClass buckets an HTTP status ("2xx", "4xx", ...); "none" when no response arrived.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "none"
	}
	return strconv.Itoa(status/100) + "xx"
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
