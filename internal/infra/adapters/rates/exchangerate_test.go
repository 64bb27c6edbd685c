//go:build !integration

package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExchangeRateClient_LatestRates(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the rates map for the base currency", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"base":"USD","date":"2026-08-29","rates":{"SAR":3.75,"EUR":0.92}}`))
		}))
		defer srv.Close()

		client := NewExchangeRateClient(srv.URL, 5*time.Second)
		rates, err := client.LatestRates(ctx, "USD")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPath != "/v4/latest/USD" {
			t.Errorf("path = %q, want /v4/latest/USD", gotPath)
		}
		if rates["SAR"] != 3.75 {
			t.Errorf("SAR rate = %v, want 3.75", rates["SAR"])
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewExchangeRateClient(srv.URL, 5*time.Second)
		if _, err := client.LatestRates(ctx, "USD"); err == nil {
			t.Fatal("expected an error on HTTP 429")
		}
	})

	t.Run("empty rates map is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"base":"USD","rates":{}}`))
		}))
		defer srv.Close()

		client := NewExchangeRateClient(srv.URL, 5*time.Second)
		if _, err := client.LatestRates(ctx, "USD"); err == nil {
			t.Fatal("expected an error for an empty rates map")
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewExchangeRateClient(srv.URL, 5*time.Second)
		if _, err := client.LatestRates(ctx, "USD"); err == nil {
			t.Fatal("expected an error for a malformed body")
		}
	})
}
