package models

// Tier represents a subscription tier gating resource limits
type Tier string

const (
	TierFree     Tier = "free"
	TierPremium  Tier = "premium"
	TierBusiness Tier = "business"
)

// ValidTiers defines allowed subscription tiers
var ValidTiers = map[Tier]bool{
	TierFree:     true,
	TierPremium:  true,
	TierBusiness: true,
}

// Resource is a tier-limited resource kind
type Resource string

const (
	ResourceProducts Resource = "products"
	ResourceGallery  Resource = "gallery"
)

// Unlimited is the sentinel used for tiers without a practical cap
const Unlimited = 999

// TierLimits holds the per-profile resource caps for one tier
type TierLimits struct {
	Products int `json:"products"`
	Gallery  int `json:"gallery"`
}

// limitsByTier is the single source of truth for tier caps.
// Premium allows 50 products; every caller must clamp through this table
// rather than carrying its own constants.
var limitsByTier = map[Tier]TierLimits{
	TierFree:     {Products: 5, Gallery: 1},
	TierPremium:  {Products: 50, Gallery: 10},
	TierBusiness: {Products: Unlimited, Gallery: Unlimited},
}

// LimitsFor returns the resource limits for a tier.
// Unknown tiers get the free limits.
func LimitsFor(tier Tier) TierLimits {
	if limits, ok := limitsByTier[tier]; ok {
		return limits
	}
	return limitsByTier[TierFree]
}

// Clamp caps a requested resource count at the tier limit
func Clamp(requested int, tier Tier, resource Resource) int {
	limits := LimitsFor(tier)
	limit := limits.Products
	if resource == ResourceGallery {
		limit = limits.Gallery
	}
	if requested > limit {
		return limit
	}
	return requested
}
