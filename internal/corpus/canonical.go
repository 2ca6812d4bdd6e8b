package corpus

import (
	"errors"
	"net/url"
	"strings"
)

// Canonicalize reduces a raw URL to the form used as the corpus dedup key:
// lowercase scheme and host, default ports and fragments and userinfo
// stripped, path and query kept as-is. Two URLs with equal canonical forms
// are the same candidate.
func Canonicalize(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", errors.New("unsupported scheme")
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", errors.New("missing host")
	}

	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		host = host + ":" + port
	}

	c := url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     u.Path,
		RawQuery: u.RawQuery,
	}
	return c.String(), nil
}
