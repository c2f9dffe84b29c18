package models

import "testing"

func TestLimitsFor(t *testing.T) {
	tests := []struct {
		tier         Tier
		wantProducts int
		wantGallery  int
	}{
		{TierFree, 5, 1},
		{TierPremium, 50, 10},
		{TierBusiness, Unlimited, Unlimited},
		{Tier("enterprise"), 5, 1}, // unknown tier falls back to free
		{Tier(""), 5, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			limits := LimitsFor(tt.tier)
			if limits.Products != tt.wantProducts {
				t.Errorf("LimitsFor(%q).Products = %d, want %d", tt.tier, limits.Products, tt.wantProducts)
			}
			if limits.Gallery != tt.wantGallery {
				t.Errorf("LimitsFor(%q).Gallery = %d, want %d", tt.tier, limits.Gallery, tt.wantGallery)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		tier      Tier
		resource  Resource
		want      int
	}{
		{"free products clamped", 10, TierFree, ResourceProducts, 5},
		{"free products under limit", 3, TierFree, ResourceProducts, 3},
		{"free gallery clamped", 30, TierFree, ResourceGallery, 1},
		{"premium products clamped", 60, TierPremium, ResourceProducts, 50},
		{"premium products under limit", 10, TierPremium, ResourceProducts, 10},
		{"premium gallery clamped", 15, TierPremium, ResourceGallery, 10},
		{"business effectively unlimited", 200, TierBusiness, ResourceProducts, 200},
		{"business gallery", 30, TierBusiness, ResourceGallery, 30},
		{"unknown tier uses free limits", 10, Tier("gold"), ResourceProducts, 5},
		{"zero requested stays zero", 0, TierFree, ResourceProducts, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.requested, tt.tier, tt.resource); got != tt.want {
				t.Errorf("Clamp(%d, %q, %q) = %d, want %d", tt.requested, tt.tier, tt.resource, got, tt.want)
			}
		})
	}
}
