package corpus

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type staticSource struct {
	name string
	urls []string
	err  error
}

func (s *staticSource) Name() string { return s.name }
func (s *staticSource) Fetch(ctx context.Context, target string, subdomains bool) ([]string, error) {
	return s.urls, s.err
}

func TestCollector_MergeDeduplicates(t *testing.T) {
	c := NewCollector(zap.NewNop(),
		&staticSource{name: "a", urls: []string{"http://ex.com/a", "http://ex.com/b"}},
		&staticSource{name: "b", urls: []string{"http://ex.com/a"}},
	)

	got := c.Collect(context.Background(), "ex.com", false)
	if len(got) != 2 {
		t.Fatalf("merged corpus size: want 2, got %d (%+v)", len(got), got)
	}
	if got[0].URL != "http://ex.com/a" || got[1].URL != "http://ex.com/b" {
		t.Fatalf("discovery order broken: %+v", got)
	}
	for i, cand := range got {
		if cand.Index != i {
			t.Fatalf("candidate %d has index %d", i, cand.Index)
		}
	}
}

func TestCollector_FailingSourceIsIsolated(t *testing.T) {
	c := NewCollector(zap.NewNop(),
		&staticSource{name: "down", err: errors.New("boom")},
		&staticSource{name: "up", urls: []string{"http://ex.com/only"}},
	)

	got := c.Collect(context.Background(), "ex.com", false)
	if len(got) != 1 || got[0].URL != "http://ex.com/only" {
		t.Fatalf("want the healthy source's single URL, got %+v", got)
	}
}

func TestCollector_SkipsUnparseableURLs(t *testing.T) {
	c := NewCollector(zap.NewNop(),
		&staticSource{name: "mixed", urls: []string{"ftp://nope", "http://ex.com/ok", ""}},
	)

	got := c.Collect(context.Background(), "ex.com", false)
	if len(got) != 1 || got[0].URL != "http://ex.com/ok" {
		t.Fatalf("want only the valid URL, got %+v", got)
	}
}

func TestCollector_CanonicalCollapseAcrossSources(t *testing.T) {
	c := NewCollector(zap.NewNop(),
		&staticSource{name: "a", urls: []string{"http://Ex.com:80/a"}},
		&staticSource{name: "b", urls: []string{"http://ex.com/a"}},
	)

	got := c.Collect(context.Background(), "ex.com", false)
	if len(got) != 1 {
		t.Fatalf("canonical duplicates must collapse, got %+v", got)
	}
}
