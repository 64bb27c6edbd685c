//go:build !integration

package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/i18n"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func newTestTranslator() *i18n.Translator {
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "ar")
	if err != nil {
		panic(err)
	}
	return tr
}

// mockFollower implements adapter.RedirectFollower.
type mockFollower struct {
	followFn func(rawURL string) (string, error)
}

func (m *mockFollower) Follow(_ context.Context, rawURL string) (string, error) {
	return m.followFn(rawURL)
}

// mockAffiliateAPI implements adapter.AffiliateAPI and records the tracking
// URLs it was asked to convert.
type mockAffiliateAPI struct {
	mu            sync.Mutex
	generateFn    func(trackingURL string) ([]string, error)
	detailsFn     func(ids, fields []string) ([]adapter.RawProductDetail, error)
	generateCalls []string
}

func (m *mockAffiliateAPI) GenerateLinks(_ context.Context, trackingURL string) ([]string, error) {
	m.mu.Lock()
	m.generateCalls = append(m.generateCalls, trackingURL)
	m.mu.Unlock()
	if m.generateFn == nil {
		return nil, nil
	}
	return m.generateFn(trackingURL)
}

func (m *mockAffiliateAPI) ProductDetails(_ context.Context, ids, fields []string) ([]adapter.RawProductDetail, error) {
	if m.detailsFn == nil {
		return nil, nil
	}
	return m.detailsFn(ids, fields)
}

// mockRateProvider implements adapter.RateProvider.
type mockRateProvider struct {
	ratesFn func(base string) (map[string]float64, error)
}

func (m *mockRateProvider) LatestRates(_ context.Context, base string) (map[string]float64, error) {
	if m.ratesFn == nil {
		return nil, nil
	}
	return m.ratesFn(base)
}
