package probe

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"
)

// Historical endpoints are probed with a browser-looking agent; some of
// them refuse obvious tooling.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/58.0.3029.110 Safari/537.36"

type HTTPChecker struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPChecker builds a checker with a hard client-side timeout. The
// timeout here is a backstop; the scheduler additionally bounds every probe
// with its own per-request context. insecure skips certificate
// verification, which archived URLs frequently need (stale vhosts, expired
// certs).
func NewHTTPChecker(timeout time.Duration, insecure bool) *HTTPChecker {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &HTTPChecker{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		UserAgent: defaultUserAgent,
	}
}

// Check issues one GET, following redirects, and measures until the body is
// drained. Draining matters: headers alone can arrive fast on a slow
// handler, and the race-window heuristic is about the full response.
func (h *HTTPChecker) Check(ctx context.Context, target string) Timing {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Timing{Err: err}
	}
	req.Header.Set("User-Agent", h.UserAgent)

	start := time.Now()
	resp, err := h.Client.Do(req)
	if err != nil {
		return Timing{Elapsed: time.Since(start), Err: err}
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return Timing{StatusCode: resp.StatusCode, Elapsed: elapsed, Err: err}
	}
	return Timing{StatusCode: resp.StatusCode, Elapsed: elapsed}
}
