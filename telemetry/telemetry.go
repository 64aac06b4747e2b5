// Package telemetry provides hierarchical timing of validation passes.
// Collectors travel through context so instrumentation never changes
// function signatures; when no collector is installed, timers are no-ops.
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timings for one run.
type Collector interface {
	// Start begins timing a top-level operation.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation. Nested operations are timed with Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector installs a collector on the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext returns the context's collector, or a no-op collector when
// none is installed.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noopCollector{}
}

type noopCollector struct{}

func (noopCollector) Start(string) Timer { return noopTimer{} }
func (noopCollector) Report(io.Writer)   {}

type noopTimer struct{}

func (noopTimer) End()               {}
func (noopTimer) Child(string) Timer { return noopTimer{} }
