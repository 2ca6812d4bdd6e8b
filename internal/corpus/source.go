package corpus

import "context"

// Source is one historical-URL provider (archive index, threat-intel feed).
// Fetch returns raw URL strings for the target; canonicalization and dedup
// happen in the collector, not in sources. A Source must be safe for
// concurrent use with other sources but is only called once per run.
type Source interface {
	Name() string
	Fetch(ctx context.Context, target string, subdomains bool) ([]string, error)
}
