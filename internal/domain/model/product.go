package model

// AffiliateLink is one generated promotional URL for a single campaign
// variant. Absence of a variant's link is expected and tolerated.
type AffiliateLink struct {
	Variant CampaignVariant
	URL     string
}

// ProductDetails holds the optional product metadata. It is all-or-nothing:
// a partially populated value is never constructed.
type ProductDetails struct {
	Title    string
	PriceUSD float64
	ImageURL string
}

// Valid reports whether the details satisfy the all-or-nothing invariant.
func (d ProductDetails) Valid() bool {
	return d.Title != "" && d.PriceUSD > 0 && d.ImageURL != ""
}
