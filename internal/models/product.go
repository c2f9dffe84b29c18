package models

import (
	"time"
)

// Product represents a catalog product linked to a profile
type Product struct {
	ID          string    `json:"id" db:"id"`
	ProfileID   string    `json:"profile_id" db:"profile_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Details     string    `json:"details,omitempty" db:"details"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProductTemplate is one product skeleton from the category catalog
type ProductTemplate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Details     string  `json:"details,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// CategoryProductSet is the synthesized 10-product template for one
// business category, shared by every row with that category.
type CategoryProductSet struct {
	Category string            `json:"category"`
	Count    int               `json:"count"`
	Products []ProductTemplate `json:"products"`
}
