package models

import (
	"time"
)

// ImportRun is the durable audit record of one confirmed bulk upload.
// The confirm call itself is synchronous; the run row is written after
// the batch finishes so past imports stay inspectable.
type ImportRun struct {
	ID              string     `json:"run_id" db:"id"`
	Mode            UploadMode `json:"upload_mode" db:"upload_mode"`
	Tier            Tier       `json:"tier" db:"tier"`
	TotalRows       int        `json:"total_rows" db:"total_rows"`
	ProfilesCreated int        `json:"profiles_created" db:"profiles_created"`
	ProductsCreated int        `json:"products_created" db:"products_created"`
	GalleryCreated  int        `json:"gallery_created" db:"gallery_created"`
	AuthCreated     int        `json:"auth_created" db:"auth_created"`
	AuthFailed      int        `json:"auth_failed" db:"auth_failed"`
	ErrorCount      int        `json:"error_count" db:"error_count"`
	DurationMs      int64      `json:"duration_ms" db:"duration_ms"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
