package model

// CampaignVariant is one fixed monetization channel. The table is static
// and shared read-only across concurrent message handlers.
type CampaignVariant struct {
	Name       string
	SourceType int
	// Tracking is the pre-built query tail appended after the sourceType
	// parameter when building the share-gateway URL. The super and limited
	// channels carry an empty aff_fcid on purpose.
	Tracking string
	// LabelKey is the translation key for this variant's heading in replies.
	LabelKey string
}

const (
	VariantCoin    = "coin"
	VariantBundle  = "bundle"
	VariantSuper   = "super"
	VariantLimited = "limited"
)

var campaignVariants = []CampaignVariant{
	{
		Name:       VariantCoin,
		SourceType: 620,
		Tracking: "&aff_fcid=34fabe5cf18745ab97c90d014e8a80cf-1734973621910-01431-UneMJZVf" +
			"&tt=CPS_NORMAL&aff_fsk=UneMJZVf&aff_platform=default&sk=UneMJZVf" +
			"&aff_trace_key=34fabe5cf18745ab97c90d014e8a80cf-1734973621910-01431-UneMJZVf" +
			"&terminal_id=62cf3423af9c4ab4850b626d4215da6f",
		LabelKey: "offer_coin",
	},
	{
		Name:       VariantBundle,
		SourceType: 560,
		Tracking: "&aff_fcid=8709097a28d844489c4a3f7de6192b4f-1734973687070-08567-UneMNwjD" +
			"&tt=CPS_NORMAL&aff_fsk=UneMNwjD&aff_platform=default&sk=UneMNwjD" +
			"&aff_trace_key=8709097a28d844489c4a3f7de6192b4f-1734973687070-08567-UneMNwjD" +
			"&terminal_id=62cf3423af9c4ab4850b626d4215da6f",
		LabelKey: "offer_bundle",
	},
	{
		Name:       VariantSuper,
		SourceType: 562,
		Tracking:   "&aff_fcid=",
		LabelKey:   "offer_super",
	},
	{
		Name:       VariantLimited,
		SourceType: 561,
		Tracking:   "&aff_fcid=",
		LabelKey:   "offer_limited",
	},
}

// Variants returns the campaign table in reply order: coin, bundle, super,
// limited. Callers must not mutate the returned slice.
func Variants() []CampaignVariant {
	return campaignVariants
}
