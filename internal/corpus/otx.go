package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultOTXBase = "https://otx.alienvault.com"

// OTXSource pulls the AlienVault OTX url_list for the target. With
// subdomains enabled it asks the domain indicator endpoint, which covers the
// whole zone; otherwise the hostname endpoint, which is exact-match.
type OTXSource struct {
	Client    *http.Client
	BaseURL   string // overridable for tests
	PageSize  int
	MaxPages  int // hard stop so a hostile feed cannot page forever
	UserAgent string
}

func NewOTXSource() *OTXSource {
	return &OTXSource{
		Client:    &http.Client{Timeout: 30 * time.Second},
		BaseURL:   defaultOTXBase,
		PageSize:  500,
		MaxPages:  20,
		UserAgent: "Mozilla/5.0 (compatible; racehunter/1.0)",
	}
}

func (o *OTXSource) Name() string { return "otx" }

type otxPage struct {
	URLList []struct {
		URL string `json:"url"`
	} `json:"url_list"`
	HasNext bool `json:"has_next"`
}

func (o *OTXSource) Fetch(ctx context.Context, target string, subdomains bool) ([]string, error) {
	indicator := "hostname"
	if subdomains {
		indicator = "domain"
	}

	var out []string
	for page := 1; page <= o.MaxPages; page++ {
		api := fmt.Sprintf("%s/api/v1/indicators/%s/%s/url_list?limit=%d&page=%d",
			o.BaseURL, indicator, url.PathEscape(target), o.PageSize, page)

		p, err := o.fetchPage(ctx, api)
		if err != nil {
			return nil, err
		}
		for _, e := range p.URLList {
			if e.URL != "" {
				out = append(out, e.URL)
			}
		}
		if !p.HasNext {
			break
		}
	}
	return out, nil
}

func (o *OTXSource) fetchPage(ctx context.Context, api string) (*otxPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", o.UserAgent)

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("otx api returned status %d", resp.StatusCode)
	}

	var p otxPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode otx response: %w", err)
	}
	return &p, nil
}
