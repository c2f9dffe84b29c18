package models

// UploadMode selects where product and gallery images come from
type UploadMode string

const (
	// UploadModeAuto assigns stock photos from the category catalog
	UploadModeAuto UploadMode = "auto"
	// UploadModeManual pairs uploaded images with template slots by index
	UploadModeManual UploadMode = "manual"
)

// ValidUploadModes defines allowed upload modes
var ValidUploadModes = map[UploadMode]bool{
	UploadModeAuto:   true,
	UploadModeManual: true,
}

// Manual mode image preconditions, checked before preview or confirm
const (
	ManualProductImageCount = 10
	MinGalleryImages        = 1
	MaxGalleryImages        = 30
)

// ImportRow is one parsed and trimmed CSV data line.
// All fields remain strings; defaulting happens at profile build time.
type ImportRow struct {
	Line             int    `json:"line"`
	BusinessCategory string `json:"business_category"`
	DisplayName      string `json:"display_name"`
	Address          string `json:"address,omitempty"`
	BusinessLocation string `json:"business_location,omitempty"`
	WebsiteURL       string `json:"website_url,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	Email            string `json:"email,omitempty"`
	Facebook         string `json:"facebook,omitempty"`
}

// ImportBatch is the full set of rows parsed from one uploaded CSV,
// plus any manual-mode image assignments. It is never persisted;
// the batch lives only for the duration of one preview or confirm call.
type ImportBatch struct {
	Rows     []ImportRow `json:"rows"`
	Warnings []string    `json:"warnings,omitempty"`
	Mode     UploadMode  `json:"uploadMode"`

	// Manual mode only. ProductImages holds one URL (or pending
	// filename during preview) per template slot, indexed 0-9.
	// GalleryImages is the pool a random image is drawn from per profile.
	ProductImages []string `json:"productImages,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
}
