package models

import (
	"time"

	"github.com/gosimple/slug"
)

// DefaultRating is assigned to profiles created through bulk onboarding
const DefaultRating = 4.5

// DefaultPhoneNumber is used when a CSV row leaves phone_number blank
const DefaultPhoneNumber = "+27 81 234 5678"

// Profile represents a business profile in the directory
type Profile struct {
	ID          string    `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Category    string    `json:"category" db:"category"`
	Address     string    `json:"address,omitempty" db:"address"`
	Location    string    `json:"location,omitempty" db:"location"`
	WebsiteURL  string    `json:"website_url,omitempty" db:"website_url"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Email       string    `json:"email" db:"email"`
	Facebook    string    `json:"facebook,omitempty" db:"facebook"`
	Rating      float64   `json:"rating" db:"rating"`
	Tier        Tier      `json:"tier" db:"tier"`
	AccountID   string    `json:"account_id,omitempty" db:"account_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileFromRow builds a Profile from a validated import row,
// filling every blank optional field with its synthesized default.
func ProfileFromRow(row *ImportRow, tier Tier) *Profile {
	s := slug.Make(row.DisplayName)

	profile := &Profile{
		Slug:        s,
		DisplayName: row.DisplayName,
		Category:    row.BusinessCategory,
		Address:     row.Address,
		Location:    row.BusinessLocation,
		WebsiteURL:  row.WebsiteURL,
		PhoneNumber: row.PhoneNumber,
		Email:       row.Email,
		Facebook:    row.Facebook,
		Rating:      DefaultRating,
		Tier:        tier,
	}

	if profile.WebsiteURL == "" {
		profile.WebsiteURL = "https://" + s + ".example.com"
	}
	if profile.PhoneNumber == "" {
		profile.PhoneNumber = DefaultPhoneNumber
	}
	if profile.Email == "" {
		profile.Email = s + "@example.com"
	}
	if profile.Facebook == "" {
		profile.Facebook = "https://facebook.com/" + s
	}

	return profile
}
