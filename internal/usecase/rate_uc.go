package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/logging"
)

// CurrencyConverter fetches the USD→target rate. Absence of a rate means the
// caller displays USD only.
type CurrencyConverter struct {
	provider adapter.RateProvider
	target   string
	log      *zerolog.Logger
}

func NewCurrencyConverter(provider adapter.RateProvider, target string, log *zerolog.Logger) *CurrencyConverter {
	return &CurrencyConverter{provider: provider, target: target, log: log}
}

// Target returns the configured target currency code.
func (c *CurrencyConverter) Target() string { return c.target }

// Rate returns the USD→target rate, or false when the provider failed or
// omitted the target currency.
func (c *CurrencyConverter) Rate(ctx context.Context) (float64, bool) {
	rates, err := c.provider.LatestRates(ctx, "USD")
	if err != nil {
		logging.With(ctx, c.log).Warn().Err(err).Msg("exchange rate fetch failed")
		return 0, false
	}
	rate, ok := rates[c.target]
	if !ok || rate <= 0 {
		logging.With(ctx, c.log).Debug().Str("currency", c.target).Msg("target currency missing from rates")
		return 0, false
	}
	return rate, true
}
