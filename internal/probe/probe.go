package probe

import (
	"context"
	"time"
)

// Timing is the raw measurement of a single probe: wall-clock time from
// request start until the response body was fully received. Classification
// against the race-window threshold happens separately in Classify, so a
// checker stays a pure measurement device.
type Timing struct {
	StatusCode int
	Elapsed    time.Duration
	Err        error
}

// Checker performs one timed request against a target URL.
type Checker interface {
	Check(ctx context.Context, target string) Timing
}
