package models

// RowError is a per-row creation failure captured during confirm.
// Row is the original CSV line number so users can find the offender.
type RowError struct {
	Row    int    `json:"row"`
	Step   string `json:"step"` // auth, profile, products, gallery
	Reason string `json:"reason"`
}

// PreviewResult is the read-only outcome of the preview phase
type PreviewResult struct {
	TotalCount       int                  `json:"totalCount"`
	ExpectedProducts int                  `json:"expectedProducts"`
	CategoryProducts []CategoryProductSet `json:"categoryProducts"`
	Profiles         []ImportRow          `json:"profiles"`
	Warnings         []string             `json:"warnings,omitempty"`
}

// ImportResult is the aggregate outcome of a confirm. Partial success
// (non-zero counts alongside a non-empty error list) is the expected
// common case and still travels on a 200 response.
type ImportResult struct {
	ProfilesCreated int        `json:"profilesCreated"`
	ProductsCreated int        `json:"productsCreated"`
	GalleryCreated  int        `json:"galleryCreated"`
	AuthCreated     int        `json:"authCreated"`
	AuthFailed      int        `json:"authFailed"`
	DefaultPassword string     `json:"defaultPassword,omitempty"`
	Errors          []RowError `json:"errors,omitempty"`
	RunID           string     `json:"runId,omitempty"`
}

// PartialSuccess reports whether anything was created but some rows failed
func (r *ImportResult) PartialSuccess() bool {
	created := r.ProfilesCreated + r.ProductsCreated + r.GalleryCreated
	return created > 0 && len(r.Errors) > 0
}
