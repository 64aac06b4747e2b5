package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextDefaultsToNoop(t *testing.T) {
	c := FromContext(context.Background())
	timer := c.Start("anything")
	timer.Child("nested").End()
	timer.End()

	var buf strings.Builder
	c.Report(&buf)
	assert.Equal(t, "", buf.String())
}

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	timer := FromContext(ctx).Start("validate transaction")
	timer.Child("input checks").End()
	child := timer.Child("purpose/time/amount")
	child.Child("purpose").End()
	child.End()
	timer.End()

	var buf strings.Builder
	collector.Report(&buf)
	out := buf.String()

	assert.Contains(t, out, "validate transaction:")
	assert.Contains(t, out, "├─ input checks:")
	assert.Contains(t, out, "└─ purpose/time/amount:")
	assert.Contains(t, out, "   └─ purpose:")
}

func TestMultipleRoots(t *testing.T) {
	collector := NewTimingCollector()
	collector.Start("first").End()
	collector.Start("second").End()

	var buf strings.Builder
	collector.Report(&buf)
	assert.Contains(t, buf.String(), "first:")
	assert.Contains(t, buf.String(), "second:")
}
