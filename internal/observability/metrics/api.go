// Package metrics defines the metrics the hotel client emits.
package metrics

import (
	"strconv"
	"strings"
	"time"

	obserrors "github.com/target/hotel-client/internal/observability/errors"
	"github.com/target/hotel-client/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// APIRequest captures one backend call for metric emission.
type APIRequest struct {
	Method   string
	Path     string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitAPIRequest emits the request counter and latency timer.
// Path is reduced to its Endpoint so IDs do not explode tag cardinality.
func EmitAPIRequest(sink statsd.Sink, in APIRequest) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"method":   in.Method,
		"endpoint": Endpoint(in.Path),
		"result":   ResultSuccess,
	}
	if in.Status > 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("api.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("api.request.duration", in.Duration, CloneTags(tags))
	}
}

// Endpoint replaces numeric path segments with ":id", e.g. /bookings/42 -> /bookings/:id.
func Endpoint(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == "" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
