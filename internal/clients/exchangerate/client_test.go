package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/softsales/api/internal/clients/exchangerate"
	"github.com/softsales/api/internal/entity"
	"github.com/softsales/api/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *exchangerate.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return exchangerate.NewClient(config.ExchangeRate{
		BaseURL:  srv.URL,
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
		RetryMax: 0,
	})
}

func TestClient_Rate(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v6/test-key/latest/PLN", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": "success",
			"base_code": "PLN",
			"conversion_rates": {"PLN": 1, "EUR": 0.2345, "USD": 0.2512}
		}`))
	})

	rate, err := c.Rate(context.Background(), "PLN", "EUR")
	require.NoError(t, err)
	require.Equal(t, "0.2345", rate.String())
}

func TestClient_Rate_UnknownCurrency(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": "success", "conversion_rates": {"EUR": 0.2345}}`))
	})

	_, err := c.Rate(context.Background(), "PLN", "XXX")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_Rate_ZeroRate(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": "success", "conversion_rates": {"XYZ": 0}}`))
	})

	_, err := c.Rate(context.Background(), "PLN", "XYZ")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_Rate_UpstreamError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"result": "error", "error-type": "invalid-key"}`))
	})

	_, err := c.Rate(context.Background(), "PLN", "EUR")
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrNotFound)
}
