package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultWaybackBase = "https://web.archive.org"

// WaybackSource queries the Wayback Machine CDX index for every original
// URL ever archived under the target. collapse=urlkey keeps one capture
// per URL key so the response stays manageable.
type WaybackSource struct {
	Client    *http.Client
	BaseURL   string // overridable for tests
	UserAgent string
}

func NewWaybackSource() *WaybackSource {
	return &WaybackSource{
		Client:    &http.Client{Timeout: 30 * time.Second},
		BaseURL:   defaultWaybackBase,
		UserAgent: "Mozilla/5.0 (compatible; racehunter/1.0)",
	}
}

func (w *WaybackSource) Name() string { return "wayback" }

func (w *WaybackSource) Fetch(ctx context.Context, target string, subdomains bool) ([]string, error) {
	pattern := target
	if subdomains {
		pattern = "*." + target
	}
	api := fmt.Sprintf("%s/cdx/search/cdx?url=%s&output=json&collapse=urlkey&fl=original",
		w.BaseURL, url.QueryEscape(pattern+"/*"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", w.UserAgent)

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cdx api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Rows of ["original"]; the first row is the header.
	var rows [][]string
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode cdx response: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 && row[0] != "" {
			out = append(out, row[0])
		}
	}
	return out, nil
}
