// Package fxprovider implements external exchange-rate providers backing the
// rate cache.
package fxprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.frankfurter.app"

// FrankfurterClient fetches historical rates from the Frankfurter API
// (ECB reference rates, no API key required).
type FrankfurterClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFrankfurterClient creates a client for the Frankfurter API. An empty
// baseURL selects the public endpoint; a zero timeout defaults to 10s.
func NewFrankfurterClient(baseURL string, timeout time.Duration) *FrankfurterClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FrankfurterClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name identifies the provider in rate lookup sources ("live-frankfurter").
func (c *FrankfurterClient) Name() string {
	return "frankfurter"
}

type frankfurterResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate returns the rate converting one unit of base into quote on the
// given date. Frankfurter serves the closest prior banking day for weekends
// and holidays.
func (c *FrankfurterClient) FetchRate(ctx context.Context, date time.Time, base, quote string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s?from=%s&to=%s", c.baseURL, date.Format("2006-01-02"), base, quote)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("rate provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed frankfurterResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := parsed.Rates[quote]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate provider response missing quote currency %s", quote)
	}
	if rate.IsZero() {
		return decimal.Zero, fmt.Errorf("rate provider returned zero rate for %s/%s", base, quote)
	}
	return rate, nil
}
