package adapter

import "context"

// RateProvider is the outbound port to the exchange-rate service.
type RateProvider interface {
	// LatestRates returns a currency-code → rate map for the given base.
	LatestRates(ctx context.Context, base string) (map[string]float64, error)
}
