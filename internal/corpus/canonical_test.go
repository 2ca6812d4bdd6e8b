package corpus

import "testing"

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"http://Example.com/a", "http://example.com/a"},
		{"HTTPS://EXAMPLE.COM:443/a?b=1", "https://example.com/a?b=1"},
		{"http://example.com:80/a", "http://example.com/a"},
		{"http://example.com:8080/a", "http://example.com:8080/a"},
		{"http://example.com/a#frag", "http://example.com/a"},
		{"http://user:pw@example.com/a", "http://example.com/a"},
		{"  http://example.com/a?x=1&y=2 ", "http://example.com/a?x=1&y=2"},
	}
	for _, tc := range cases {
		got, err := Canonicalize(tc.in)
		if err != nil {
			t.Fatalf("Canonicalize(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalize_Rejects(t *testing.T) {
	for _, in := range []string{"", "ftp://example.com/a", "example.com/a", "http://"} {
		if got, err := Canonicalize(in); err == nil {
			t.Fatalf("Canonicalize(%q): want error, got %q", in, got)
		}
	}
}

func TestCanonicalize_SameKeyCollides(t *testing.T) {
	a, err := Canonicalize("http://Example.com:80/path?q=1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Canonicalize("http://example.com/path?q=1")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected equal canonical forms, got %q vs %q", a, b)
	}
}
