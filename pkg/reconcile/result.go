package reconcile

import "time"

// Result summarizes a completed reconciliation run.
type Result struct {
	// Projects is the number of portal projects enriched.
	Projects int

	// Users is the number of distinct owners resolved.
	Users int

	// TopLevel is the number of top-level projects.
	TopLevel int

	// MaxLevel is the deepest project level observed.
	MaxLevel int

	// Duration is the wall time of the run.
	Duration time.Duration
}
