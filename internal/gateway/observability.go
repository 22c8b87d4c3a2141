package gateway

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single exchange with the planning service.
type CallEvent struct {
	RequestID string
	Method    string
	Path      string
	Status    int
	LatencyMs int64
	Kind      FailureKind
}

// Observer receives events about gateway calls for logging and diagnostics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	outcome := "ok"
	if event.Kind != KindNone {
		outcome = "err:" + string(event.Kind)
	}
	fmt.Fprintf(o.w, "[%s] api_call id=%s %s %s status=%d latency_ms=%d outcome=%s\n",
		ts, event.RequestID, event.Method, event.Path, event.Status, event.LatencyMs, outcome)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
