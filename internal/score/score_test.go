package score

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
)

func TestHeuristic_DeterministicAndBounded(t *testing.T) {
	h := Heuristic{}
	urls := []string{
		"https://ex.com/api/transfer?amount=10&token=x",
		"https://ex.com/blog/post-1",
		"https://ex.com/checkout/confirm?coupon=SAVE",
		"https://ex.com/",
	}
	for _, u := range urls {
		a, err := h.Score(u)
		if err != nil {
			t.Fatalf("Score(%q): %v", u, err)
		}
		b, _ := h.Score(u)
		if a != b {
			t.Fatalf("scorer not pure for %q: %v vs %v", u, a, b)
		}
		if a < 0 || a > 1 {
			t.Fatalf("score out of [0,1] for %q: %v", u, a)
		}
	}
}

func TestHeuristic_RepeatedCallsAgreeAcrossManyParams(t *testing.T) {
	// Enough matched query params that a map-order-dependent float sum
	// would produce more than one value over repeated calls.
	const u = "https://ex.com/blog?id=1&token=x&code=y&amount=2&key=k&qty=3&coupon=c"
	h := Heuristic{}

	first, err := h.Score(u)
	if err != nil {
		t.Fatalf("Score(%q): %v", u, err)
	}
	for i := 0; i < 2000; i++ {
		got, _ := h.Score(u)
		if got != first {
			t.Fatalf("call %d: score drifted from %v to %v", i, first, got)
		}
	}
}

func TestHeuristic_SuspiciousOutranksBoring(t *testing.T) {
	h := Heuristic{}
	hot, _ := h.Score("https://ex.com/api/transfer?amount=100")
	cold, _ := h.Score("https://ex.com/about")
	if hot <= cold {
		t.Fatalf("transfer endpoint (%v) should outrank about page (%v)", hot, cold)
	}
}

type fixedScorer map[string]float64

func (f fixedScorer) Score(u string) (float64, error) {
	v, ok := f[u]
	if !ok {
		return 0, errors.New("unknown url")
	}
	return v, nil
}

func cands(urls ...string) []domain.Candidate {
	out := make([]domain.Candidate, len(urls))
	for i, u := range urls {
		out[i] = domain.Candidate{URL: u, Index: i}
	}
	return out
}

func TestRank_SortsDescendingWithTopK(t *testing.T) {
	s := fixedScorer{"u0": 0.9, "u1": 0.8, "u2": 0.5, "u3": 0.3, "u4": 0.1}
	got := Rank(zap.NewNop(), cands("u2", "u4", "u0", "u3", "u1"), s, 2)

	if len(got) != 2 {
		t.Fatalf("maxProbe=2: want 2 scheduled, got %d", len(got))
	}
	if got[0].URL != "u0" || got[1].URL != "u1" {
		t.Fatalf("want the two highest-scored URLs first, got %+v", got)
	}
}

func TestRank_TiesKeepDiscoveryOrder(t *testing.T) {
	s := fixedScorer{"a": 0.5, "b": 0.5, "c": 0.5}
	got := Rank(zap.NewNop(), cands("a", "b", "c"), s, 0)
	for i, want := range []string{"a", "b", "c"} {
		if got[i].URL != want {
			t.Fatalf("tie order broken at %d: %+v", i, got)
		}
	}
}

func TestRank_NilScorerIsIdentity(t *testing.T) {
	got := Rank(zap.NewNop(), cands("x", "y", "z"), nil, 0)
	for i, want := range []string{"x", "y", "z"} {
		if got[i].URL != want || got[i].Score != 0 {
			t.Fatalf("identity permutation broken at %d: %+v", i, got)
		}
	}
}

func TestRank_ScorerErrorMeansNeutralScore(t *testing.T) {
	s := fixedScorer{"known": 0.7}
	got := Rank(zap.NewNop(), cands("unknown", "known"), s, 0)

	if len(got) != 2 {
		t.Fatalf("a scoring error must not drop the candidate: %+v", got)
	}
	if got[0].URL != "known" || got[1].URL != "unknown" || got[1].Score != 0 {
		t.Fatalf("want failed-scoring URL last with 0.0, got %+v", got)
	}
}

func TestRank_ClampsOutOfRangeScores(t *testing.T) {
	s := fixedScorer{"big": 3.0, "neg": -1.0}
	got := Rank(zap.NewNop(), cands("neg", "big"), s, 0)
	if got[0].Score != 1 || got[1].Score != 0 {
		t.Fatalf("scores must clamp to [0,1]: %+v", got)
	}
}
