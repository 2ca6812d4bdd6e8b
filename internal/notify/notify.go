package notify

import (
	"context"
	"fmt"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/scheduler"
)

type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, title, text); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// FormatSummary renders the end-of-run notification for a scan that found
// at least one race-window candidate.
func FormatSummary(target string, sum scheduler.Summary) (title, text string) {
	title = fmt.Sprintf("Potential race windows on %s", target)

	text = fmt.Sprintf("Run: %s\nProbed: %d\nFlagged: %d (failed writes: %d)\nFailed probes: %d\n",
		sum.RunID, sum.Probed, sum.Flagged, sum.Dropped, sum.Failed)
	for _, r := range sum.Records {
		text += fmt.Sprintf("- %s | %d | %.3fs | score %.2f\n",
			r.URL, r.StatusCode, r.ResponseTime, r.AIScore)
	}
	text += "Timing heuristic only; verify findings manually before reporting."
	return title, text
}
