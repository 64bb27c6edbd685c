package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain/model"
	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/logging"
	"telegram-affiliate-bot/internal/infra/metrics"
)

var detailFields = []string{"target_sale_price", "product_title", "product_main_image_url"}

// AffiliateService generates per-variant promotional links and fetches
// product details through the affiliate network port.
type AffiliateService struct {
	api adapter.AffiliateAPI
	log *zerolog.Logger
}

func NewAffiliateService(api adapter.AffiliateAPI, log *zerolog.Logger) *AffiliateService {
	return &AffiliateService{api: api, log: log}
}

// GatewayURL builds the share-gateway tracking URL for one campaign variant.
// The resolved URL is embedded unescaped, exactly as the gateway expects it.
func GatewayURL(resolvedURL string, v model.CampaignVariant) string {
	return fmt.Sprintf(
		"https://star.aliexpress.com/share/share.htm?platform=AE&businessType=ProductDetail&redirectUrl=%s?sourceType=%d%s",
		resolvedURL, v.SourceType, v.Tracking,
	)
}

// GenerateLink produces the promotional link for one variant. Any service
// error or empty result yields absence; one variant's failure never affects
// another. The product id is carried for log correlation only.
func (s *AffiliateService) GenerateLink(ctx context.Context, productID, resolvedURL string, v model.CampaignVariant) (model.AffiliateLink, bool) {
	links, err := s.api.GenerateLinks(ctx, GatewayURL(resolvedURL, v))
	if err != nil {
		metrics.IncVariantFailure(v.Name)
		logging.With(ctx, s.log).Warn().Err(err).
			Str("variant", v.Name).Str("product_id", productID).
			Msg("affiliate link generation failed")
		return model.AffiliateLink{}, false
	}
	if len(links) == 0 || links[0] == "" {
		metrics.IncVariantFailure(v.Name)
		logging.With(ctx, s.log).Debug().
			Str("variant", v.Name).Str("product_id", productID).
			Msg("affiliate service returned no promotion link")
		return model.AffiliateLink{}, false
	}
	return model.AffiliateLink{Variant: v, URL: links[0]}, true
}

// FetchDetails retrieves title, price and image for a product. Empty results
// and price coercion failures both degrade to absence, never to an abort.
func (s *AffiliateService) FetchDetails(ctx context.Context, productID string) (*model.ProductDetails, bool) {
	records, err := s.api.ProductDetails(ctx, []string{productID}, detailFields)
	if err != nil {
		logging.With(ctx, s.log).Warn().Err(err).Str("product_id", productID).Msg("product details fetch failed")
		return nil, false
	}
	if len(records) == 0 {
		return nil, false
	}
	rec := records[0]
	price, err := strconv.ParseFloat(rec.TargetSalePrice, 64)
	if err != nil || price <= 0 {
		logging.With(ctx, s.log).Debug().
			Str("product_id", productID).Str("raw_price", rec.TargetSalePrice).
			Msg("unusable sale price in details record")
		return nil, false
	}
	details := &model.ProductDetails{
		Title:    rec.ProductTitle,
		PriceUSD: price,
		ImageURL: rec.MainImageURL,
	}
	if !details.Valid() {
		return nil, false
	}
	return details, true
}
