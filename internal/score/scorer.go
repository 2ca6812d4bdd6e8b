package score

import (
	"net/url"
	"sort"
	"strings"
)

// Scorer assigns a suspicion score in [0,1] to one URL. Implementations
// must be pure: same URL, same score, no side effects. The score only
// orders probing, it never gates it.
type Scorer interface {
	Score(url string) (float64, error)
}

// Neutral scores everything 0, leaving candidates in discovery order.
type Neutral struct{}

func (Neutral) Score(string) (float64, error) { return 0, nil }

// Heuristic is a deterministic lexical scorer: URLs whose path or query
// look like state-changing or identity-carrying endpoints rank higher,
// since those are where a missing serialization step would matter.
type Heuristic struct{}

var pathSignals = map[string]float64{
	"transfer": 0.4, "withdraw": 0.4, "redeem": 0.4, "coupon": 0.4,
	"checkout": 0.35, "payment": 0.35, "purchase": 0.35, "order": 0.3,
	"claim": 0.3, "vote": 0.3, "invite": 0.25, "gift": 0.25,
	"apply": 0.2, "submit": 0.2, "confirm": 0.2, "register": 0.2,
	"create": 0.15, "update": 0.15, "delete": 0.15, "add": 0.1,
	"api": 0.15, "admin": 0.15, "account": 0.1, "cart": 0.2,
}

var paramSignals = map[string]float64{
	"id": 0.1, "token": 0.15, "code": 0.15, "amount": 0.2,
	"key": 0.1, "coupon": 0.2, "voucher": 0.2, "qty": 0.1,
}

func (Heuristic) Score(raw string) (float64, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, err
	}

	var s float64
	path := strings.ToLower(u.Path)
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '.' || r == '-' || r == '_'
	}) {
		if w, ok := pathSignals[seg]; ok {
			s += w
		}
	}
	// Map iteration order varies and float addition is not associative, so
	// sum the matched keys in sorted order to keep the score reproducible.
	q := u.Query()
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, strings.ToLower(key))
	}
	sort.Strings(keys)
	for _, key := range keys {
		if w, ok := paramSignals[key]; ok {
			s += w
		}
	}

	if s > 1 {
		s = 1
	}
	return s, nil
}
