// Package ratesource implements the upstream exchange-rate providers.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
)

const defaultFetchTimeout = 10 * time.Second

// ERAPISourceName keys the rate cache for this provider.
const ERAPISourceName = "er-api"

// erAPIPayload is the provider's documented response shape.
type erAPIPayload struct {
	Base            string             `json:"base"`
	Date            string             `json:"date"`
	TimeLastUpdated int64              `json:"time_last_updated"`
	Rates           map[string]float64 `json:"rates"`
}

// ERAPISource fetches a full base/date/rates triple from an
// exchangerate-api style endpoint.
type ERAPISource struct {
	url    string
	client *http.Client
}

// NewERAPISource creates the provider client. A nil httpClient falls back to
// a default with a 10s timeout.
func NewERAPISource(url string, httpClient *http.Client) *ERAPISource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &ERAPISource{url: url, client: httpClient}
}

// Name identifies the provider.
func (s *ERAPISource) Name() string { return ERAPISourceName }

// FetchRates retrieves and normalizes the provider payload.
func (s *ERAPISource) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	var payload erAPIPayload
	if err := fetchJSON(ctx, s.client, s.url, &payload); err != nil {
		return nil, err
	}
	if payload.Base == "" || len(payload.Rates) == 0 {
		return nil, fmt.Errorf("malformed payload from %s: missing base or rates", s.url)
	}

	asOf := time.Unix(payload.TimeLastUpdated, 0)
	if payload.TimeLastUpdated == 0 {
		if parsed, err := time.Parse("2006-01-02", payload.Date); err == nil {
			asOf = parsed
		} else {
			asOf = time.Now()
		}
	}

	rates := make(map[domain.CurrencyCode]float64, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[domain.CurrencyCode(strings.ToUpper(code))] = rate
	}
	return &domain.RateTable{
		Base:      domain.CurrencyCode(strings.ToUpper(payload.Base)),
		AsOf:      asOf,
		Rates:     rates,
		FetchedAt: time.Now(),
	}, nil
}

// fetchJSON issues a GET and decodes the JSON body. Non-2xx statuses are
// errors so the cache layer can fall back to stale data.
func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build rate request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("rate fetch from %s failed: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("rate fetch from %s returned status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode rate payload from %s: %w", url, err)
	}
	return nil
}

var _ portsrepo.RateSource = (*ERAPISource)(nil)
