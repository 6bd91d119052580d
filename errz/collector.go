package errz

import (
	"github.com/hashicorp/go-multierror"
)

// Collector accumulates the Errors raised by a single pipeline stage. The
// scanner and the parser each own exactly one Collector and never share it
// with another stage, matching spec.md §2's "each stage owns its own error
// list" rule. The interpreter has no Collector: it stops at its first
// error and returns it as an interp.RuntimeError.
type Collector struct {
	kind Kind
	errs []*Error
}

// NewCollector returns an empty Collector for the given stage.
func NewCollector(kind Kind) *Collector {
	return &Collector{kind: kind}
}

// Add records a new Error at the given line with a formatted message.
func (c *Collector) Add(line int, format string, args ...any) {
	c.errs = append(c.errs, New(c.kind, line, format, args...))
}

// Errs returns the accumulated Errors in the order they were recorded.
func (c *Collector) Errs() []*Error {
	return c.errs
}

// HasErrors reports whether any error has been recorded.
func (c *Collector) HasErrors() bool {
	return len(c.errs) > 0
}

// Err rolls the collected Errors up into a single error value suitable for
// a conventional Go return. Returns nil if nothing was recorded.
func (c *Collector) Err() error {
	return Join(c.errs)
}

// Join rolls one or more stage error slices up into a single error value
// using go-multierror, so a caller holding only a stage's error slice (not
// its Collector) can still build the same aggregate the stage itself would
// have. Used by the CLI to log a stage's full error set as one multierror
// under --verbose. Returns nil if every slice is empty.
func Join(errSlices ...[]*Error) error {
	var merr *multierror.Error
	for _, errs := range errSlices {
		for _, e := range errs {
			merr = multierror.Append(merr, e)
		}
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = func(errs []error) string {
		if len(errs) == 1 {
			return errs[0].Error()
		}
		msg := errs[0].Error()
		for _, e := range errs[1:] {
			msg += "\n" + e.Error()
		}
		return msg
	}
	return merr
}
