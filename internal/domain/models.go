package domain

import "time"

// RunID identifies one scan run. It is carried through logs and the summary
// but intentionally not persisted: the storage schema is append-only history.
type RunID string

// Candidate is one historically-seen endpoint in its canonical form.
// The canonical URL is the dedup key; Index is the position at which the
// merged corpus first discovered it, used for stable tie-breaking when
// candidates share a suspicion score.
type Candidate struct {
	URL   string `json:"url"`
	Index int    `json:"index"`
}

// ScoredCandidate pairs a candidate with its suspicion score in [0,1].
// Scores are computed once per run; 0.0 when no scorer is configured or
// the scorer failed for this URL.
type ScoredCandidate struct {
	Candidate
	Score float64 `json:"score"`
}

// OutcomeKind is the terminal classification of one probe attempt.
type OutcomeKind string

const (
	// OutcomeFlagged means the response came back strictly faster than the
	// configured threshold, suggesting a skipped server-side serialization
	// step. A heuristic signal for manual follow-up, never a confirmed finding.
	OutcomeFlagged OutcomeKind = "flagged"
	// OutcomeNormal means the probe completed at or above the threshold.
	OutcomeNormal OutcomeKind = "normal"
	// OutcomeFailed means network error or timeout. Terminal, no retry.
	OutcomeFailed OutcomeKind = "failed"
)

// ErrorKind distinguishes failed probes for the aggregator and for tests.
type ErrorKind string

const (
	ErrorNone    ErrorKind = ""
	ErrorTimeout ErrorKind = "timeout"
	ErrorNetwork ErrorKind = "network"
)

// Outcome is the classified result of probing one candidate.
type Outcome struct {
	Kind       OutcomeKind   `json:"kind"`
	StatusCode int           `json:"status_code,omitempty"`
	Elapsed    time.Duration `json:"elapsed"`
	Score      float64       `json:"score,omitempty"`
	ErrorKind  ErrorKind     `json:"error_kind,omitempty"`
	Reason     string        `json:"reason,omitempty"`
}

// Record is the persisted projection of a Flagged outcome. Column names in
// the race_conditions table follow these fields one to one. Rows are
// append-only with no uniqueness constraint: re-running against the same
// domain appends again, preserving multi-run history.
type Record struct {
	URL          string    `json:"url" db:"url"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	ResponseTime float64   `json:"response_time" db:"response_time"`
	AIScore      float64   `json:"ai_score" db:"ai_score"`
	ObservedAt   time.Time `json:"observed_at" db:"observed_at"`
}
