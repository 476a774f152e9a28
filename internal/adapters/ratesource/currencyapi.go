package ratesource

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fleetpulse/fleet_billing_app/internal/core/domain"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
)

// CurrencyAPISourceName keys the rate cache for this provider.
const CurrencyAPISourceName = "currency-api"

// currencyAPIPayload is a base-currency-only map: {"usd": {"eur": 0.92, ...}}.
type currencyAPIPayload struct {
	USD map[string]float64 `json:"usd"`
}

// CurrencyAPISource fetches a USD-only rate map and normalizes it into the
// internal table shape: base USD, uppercased codes, asOf synthesized from the
// clock since the payload carries no usable timestamp.
type CurrencyAPISource struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewCurrencyAPISource creates the provider client.
func NewCurrencyAPISource(url string, httpClient *http.Client) *CurrencyAPISource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &CurrencyAPISource{url: url, client: httpClient, now: time.Now}
}

// Name identifies the provider.
func (s *CurrencyAPISource) Name() string { return CurrencyAPISourceName }

// FetchRates retrieves and normalizes the provider payload.
func (s *CurrencyAPISource) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	var payload currencyAPIPayload
	if err := fetchJSON(ctx, s.client, s.url, &payload); err != nil {
		return nil, err
	}
	if len(payload.USD) == 0 {
		return nil, fmt.Errorf("malformed payload from %s: missing usd map", s.url)
	}

	rates := make(map[domain.CurrencyCode]float64, len(payload.USD))
	for code, rate := range payload.USD {
		rates[domain.CurrencyCode(strings.ToUpper(code))] = rate
	}
	now := s.now()
	return &domain.RateTable{
		Base:      "USD",
		AsOf:      now,
		Rates:     rates,
		FetchedAt: now,
	}, nil
}

var _ portsrepo.RateSource = (*CurrencyAPISource)(nil)
