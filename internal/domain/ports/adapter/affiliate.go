package adapter

import "context"

// RawProductDetail is one record from the affiliate details endpoint, kept as
// returned on the wire. Price coercion happens in the use case layer.
type RawProductDetail struct {
	TargetSalePrice string
	ProductTitle    string
	MainImageURL    string
}

// AffiliateAPI is the outbound port to the affiliate network.
type AffiliateAPI interface {
	// GenerateLinks converts a tracking URL into zero or more promotional
	// URLs. An empty slice without error is a valid outcome.
	GenerateLinks(ctx context.Context, trackingURL string) ([]string, error)
	// ProductDetails fetches detail records for the given product ids,
	// restricted to the requested fields.
	ProductDetails(ctx context.Context, productIDs []string, fields []string) ([]RawProductDetail, error)
}
