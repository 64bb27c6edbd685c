package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain"
	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/logging"
)

const (
	shareGatewayHost = "star.aliexpress.com"
	coinIndexPath    = "/p/coin-index"
	itemPathFragment = "aliexpress.com/item"
	redirectURLParam = "redirectUrl"
)

// Resolver follows a candidate link's redirect chain and unwraps marketplace
// gateway URLs to the true product destination.
type Resolver struct {
	follower adapter.RedirectFollower
	log      *zerolog.Logger
}

func NewResolver(follower adapter.RedirectFollower, log *zerolog.Logger) *Resolver {
	return &Resolver{follower: follower, log: log}
}

// Resolve returns the canonical destination URL for link. A network failure
// while following redirects is terminal for the message.
func (r *Resolver) Resolve(ctx context.Context, link string) (string, error) {
	finalURL, err := r.follower.Follow(ctx, link)
	if err != nil {
		logging.With(ctx, r.log).Warn().Err(err).Str("link", link).Msg("redirect chain failed")
		return "", fmt.Errorf("%w: %v", domain.ErrResolutionFailed, err)
	}
	resolved := Disambiguate(finalURL)
	logging.With(ctx, r.log).Debug().Str("link", link).Str("resolved", resolved).Msg("link resolved")
	return resolved, nil
}

// Disambiguate applies the gateway-unwrapping rules to a terminal URL, in
// this exact priority order:
//  1. share-gateway host with a redirectUrl parameter → the decoded parameter
//  2. direct item page → unchanged
//  3. coin-index interstitial with a redirectUrl parameter → the parameter
//  4. anything else → unchanged
//
// The asymmetry between rules 1 and 3 mirrors the marketplace's observed
// behaviour and is kept as-is.
func Disambiguate(finalURL string) string {
	if strings.Contains(finalURL, shareGatewayHost) {
		if target, ok := redirectParam(finalURL); ok {
			return target
		}
	}
	if strings.Contains(finalURL, itemPathFragment) {
		return finalURL
	}
	if strings.Contains(finalURL, coinIndexPath) {
		if target, ok := redirectParam(finalURL); ok {
			return target
		}
	}
	return finalURL
}

func redirectParam(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	target := u.Query().Get(redirectURLParam)
	if target == "" {
		return "", false
	}
	return target, true
}
