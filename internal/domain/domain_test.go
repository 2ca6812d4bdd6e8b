package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecord_JSONRoundTrip(t *testing.T) {
	want := Record{
		URL:          "https://example.com/api/transfer?id=1",
		StatusCode:   200,
		ResponseTime: 0.042,
		AIScore:      0.87,
		ObservedAt:   time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Record
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.URL != want.URL || got.StatusCode != want.StatusCode ||
		!got.ObservedAt.Equal(want.ObservedAt) {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
	// float compare (tolerant)
	if diff := got.ResponseTime - want.ResponseTime; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("response_time mismatch: want=%v got=%v", want.ResponseTime, got.ResponseTime)
	}
}

func TestOutcome_KindZeroValueIsNotTerminal(t *testing.T) {
	var o Outcome
	switch o.Kind {
	case OutcomeFlagged, OutcomeNormal, OutcomeFailed:
		t.Fatalf("zero-value outcome must not be a terminal kind, got %q", o.Kind)
	}
}
