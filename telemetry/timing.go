package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records a tree of timed operations and reports it as an
// indented hierarchy.
type TimingCollector struct {
	mu    sync.Mutex
	roots []*node
}

type node struct {
	name     string
	start    time.Time
	end      time.Time
	children []*node
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing a top-level operation.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := &node{name: name, start: time.Now()}
	c.roots = append(c.roots, n)
	return &timer{collector: c, node: n}
}

// Report writes the timing tree.
// Example:
//
//	validate transaction: 2ms
//	├─ input checks: 0ms
//	├─ purpose/time/amount: 1ms
//	└─ anti-deficiency act: 0ms
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, root := range c.roots {
		_, _ = fmt.Fprintf(w, "%s: %s\n", root.name, formatDuration(root.duration()))
		for i, child := range root.children {
			writeNode(w, child, "", i == len(root.children)-1)
		}
	}
}

func (n *node) duration() time.Duration {
	end := n.end
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(n.start)
}

func writeNode(w io.Writer, n *node, prefix string, last bool) {
	branch, extension := "├─ ", "│  "
	if last {
		branch, extension = "└─ ", "   "
	}
	_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, n.name, formatDuration(n.duration()))
	for i, child := range n.children {
		writeNode(w, child, prefix+extension, i == len(n.children)-1)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}

type timer struct {
	collector *TimingCollector
	node      *node
}

func (t *timer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()
	t.node.end = time.Now()
}

func (t *timer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	n := &node{name: name, start: time.Now()}
	t.node.children = append(t.node.children, n)
	return &timer{collector: t.collector, node: n}
}
