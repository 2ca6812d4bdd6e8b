package probe

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
)

// Classify turns a raw timing into a terminal outcome.
//
// The boundary is strict: elapsed < threshold flags, elapsed == threshold is
// normal. Flagging means the response finished suspiciously fast for a path
// that presumably serializes work server-side; it is a triage signal, not a
// confirmed race condition.
func Classify(t Timing, threshold time.Duration, score float64) domain.Outcome {
	if t.Err != nil {
		return domain.Outcome{
			Kind:      domain.OutcomeFailed,
			Elapsed:   t.Elapsed,
			ErrorKind: errorKind(t.Err),
			Reason:    t.Err.Error(),
		}
	}
	if t.Elapsed < threshold {
		return domain.Outcome{
			Kind:       domain.OutcomeFlagged,
			StatusCode: t.StatusCode,
			Elapsed:    t.Elapsed,
			Score:      score,
		}
	}
	return domain.Outcome{
		Kind:       domain.OutcomeNormal,
		StatusCode: t.StatusCode,
		Elapsed:    t.Elapsed,
	}
}

func errorKind(err error) domain.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrorTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.ErrorTimeout
	}
	return domain.ErrorNetwork
}
