// Package profiler tracks per-operation timing statistics for filter
// workloads. The tasks worker feeds it one sample per completed filter so
// callers can see where a pipeline spends its time.
package profiler

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stats summarizes the recorded durations of one operation.
type Stats struct {
	Name  string
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Average returns the mean duration, or zero when nothing was recorded.
func (s Stats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// OperationTimer accumulates duration samples per named operation.
// It is safe for concurrent use; isolated filter goroutines report into a
// shared timer.
type OperationTimer struct {
	mu  sync.Mutex
	ops map[string]*Stats
}

// NewOperationTimer returns an empty timer.
func NewOperationTimer() *OperationTimer {
	return &OperationTimer{ops: make(map[string]*Stats)}
}

// Track records one duration sample for the named operation.
func (t *OperationTimer) Track(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.ops[name]
	if !ok {
		s = &Stats{Name: name, Min: d, Max: d}
		t.ops[name] = s
	}
	s.Count++
	s.Total += d
	if d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
}

// Time runs fn and records its wall-clock duration under name.
func (t *OperationTimer) Time(name string, fn func()) {
	start := time.Now()
	fn()
	t.Track(name, time.Since(start))
}

// Stats returns a copy of the named operation's statistics.
func (t *OperationTimer) Stats(name string) (Stats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.ops[name]
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

// Snapshot returns copies of all recorded statistics, sorted by name.
func (t *OperationTimer) Snapshot() []Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Stats, 0, len(t.ops))
	for _, s := range t.ops {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Report renders a human-readable summary, one operation per line.
func (t *OperationTimer) Report() string {
	var b strings.Builder
	for _, s := range t.Snapshot() {
		fmt.Fprintf(&b, "%-24s count=%-6d avg=%-12s min=%-12s max=%s\n",
			s.Name, s.Count, s.Average(), s.Min, s.Max)
	}
	return b.String()
}
