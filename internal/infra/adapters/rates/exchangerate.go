package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/metrics"
)

var _ adapter.RateProvider = (*ExchangeRateClient)(nil)

// ExchangeRateClient fetches latest rates from exchangerate-api.
type ExchangeRateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewExchangeRateClient(baseURL string, timeout time.Duration) *ExchangeRateClient {
	return &ExchangeRateClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// LatestRates returns the currency → rate map for the given base currency.
func (c *ExchangeRateClient) LatestRates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveExternalCall("rates", float64(time.Since(start).Milliseconds()), err == nil)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode rates response: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("rates response carried no rates")
	}
	return parsed.Rates, nil
}
