package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
	"github.com/softsales/api/pkg/config"
	"github.com/softsales/api/pkg/transport"
)

// Client talks to the exchangerate-api.com v6 endpoint. Retries and the
// request timeout live here, at the gateway edge; callers see a single
// bounded call.
type Client struct {
	cfg  config.ExchangeRate
	http *http.Client
}

func NewClient(cfg config.ExchangeRate) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.Logger = nil
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)

	return &Client{
		cfg:  cfg,
		http: rc.StandardClient(),
	}
}

type latestRatesResponse struct {
	Result          string                     `json:"result"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// Rate returns the base->target conversion rate. A target missing from the
// rate table, or listed with a zero rate, is reported as entity.ErrNotFound.
func (c *Client) Rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v6/%s/latest/%s", c.cfg.BaseURL, c.cfg.APIKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return decimal.Zero, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data latestRatesResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode response: %w", err)
	}

	rate, ok := data.ConversionRates[target]
	if !ok || rate.IsZero() {
		return decimal.Zero, fmt.Errorf("currency %q: %w", target, entity.ErrNotFound)
	}

	return rate, nil
}
