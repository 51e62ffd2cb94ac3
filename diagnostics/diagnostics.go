// Package diagnostics provides the optional progress/log/warn/error channel
// that long-running filter operations report into.
//
// Reporters are invoked synchronously, inline with the pixel scan. A filter
// call runs on a single goroutine and never suspends, so a reporter that
// blocks stalls the whole operation; implementations should be cheap.
package diagnostics

// Reporter receives diagnostics emitted during a filter operation.
type Reporter interface {
	// Progress reports completion of the named filter as a percentage.
	// It fires at coarse intervals (once per outer scan row), not per pixel.
	Progress(filter string, percent int)
	// Log emits an informational message.
	Log(filter, message string)
	// Warn emits a non-fatal diagnostic, e.g. a skipped absent pixel.
	Warn(filter, message string)
	// Error emits an error-level diagnostic. The engine itself has no fatal
	// error class; this exists for adapters layered on top.
	Error(filter, message string)
}

// Nop is a Reporter that discards everything.
type Nop struct{}

func (Nop) Progress(string, int) {}
func (Nop) Log(string, string)   {}
func (Nop) Warn(string, string)  {}
func (Nop) Error(string, string) {}

// OrNop returns r, or a no-op reporter when r is nil. Every operation passes
// its reporter through this so callers can leave the field unset.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}

// Entry is a single recorded diagnostic, used by Collector.
type Entry struct {
	Kind    string // "progress", "log", "warn" or "error"
	Filter  string
	Message string
	Percent int
}

// Collector is a Reporter that records every emission in order.
// It exists for tests and for adapters that forward diagnostics in batches.
type Collector struct {
	Entries []Entry
}

func (c *Collector) Progress(filter string, percent int) {
	c.Entries = append(c.Entries, Entry{Kind: "progress", Filter: filter, Percent: percent})
}

func (c *Collector) Log(filter, message string) {
	c.Entries = append(c.Entries, Entry{Kind: "log", Filter: filter, Message: message})
}

func (c *Collector) Warn(filter, message string) {
	c.Entries = append(c.Entries, Entry{Kind: "warn", Filter: filter, Message: message})
}

func (c *Collector) Error(filter, message string) {
	c.Entries = append(c.Entries, Entry{Kind: "error", Filter: filter, Message: message})
}

// Warnings returns just the warning messages, in emission order.
func (c *Collector) Warnings() []string {
	var out []string
	for _, e := range c.Entries {
		if e.Kind == "warn" {
			out = append(out, e.Message)
		}
	}
	return out
}
