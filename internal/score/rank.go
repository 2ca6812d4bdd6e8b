package score

import (
	"sort"

	"go.uber.org/zap"

	"github.com/haroonawanofficial/RaceCondition-SecurityToolkit/internal/domain"
)

// Rank scores every candidate once and orders them by score descending,
// ties broken by discovery order. A nil scorer yields the identity
// permutation with neutral scores. A scorer error never aborts ranking:
// the URL is kept with the neutral 0.0 and the error is logged.
//
// maxProbe > 0 truncates to the first maxProbe entries after sorting;
// a deterministic top-K selection, not sampling.
func Rank(logger *zap.Logger, candidates []domain.Candidate, s Scorer, maxProbe int) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		sc := domain.ScoredCandidate{Candidate: c}
		if s != nil {
			v, err := s.Score(c.URL)
			if err != nil {
				logger.Warn("scorer_error", zap.String("url", c.URL), zap.Error(err))
				v = 0
			}
			sc.Score = clamp01(v)
		}
		out = append(out, sc)
	}

	if s != nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}
	if maxProbe > 0 && len(out) > maxProbe {
		out = out[:maxProbe]
	}
	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
