package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ProfileInfo is the optional 1:1 profile record of an account. Name and
// Email are denormalized copies taken at creation time.
type ProfileInfo struct {
	UserID     string    `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Occupation string    `json:"occupation,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SocialLink is an ordered external link attached to an account
type SocialLink struct {
	ID           uint      `json:"id"`
	UserID       string    `json:"userId"`
	Network      string    `json:"network"`
	URL          string    `json:"url"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SocialLinkInput is a link submitted on registration or profile update
type SocialLinkInput struct {
	Network string `json:"network" binding:"required,max=50"`
	URL     string `json:"url" binding:"required,url"`
}

// UpdateProfileInput is a presence-aware partial profile update. Links
// nil means untouched, an empty non-nil slice clears the set.
type UpdateProfileInput struct {
	Bio        null.String       `json:"bio"`
	Photo      null.String       `json:"photo"`
	Banner     null.String       `json:"banner"`
	Occupation null.String       `json:"occupation"`
	Links      []SocialLinkInput `json:"links" binding:"omitempty,dive"`
}

// PublicProfile is the outward view of a profile page
type PublicProfile struct {
	UserID     string       `json:"userId"`
	Username   string       `json:"username,omitempty"`
	Name       string       `json:"name"`
	Occupation string       `json:"occupation,omitempty"`
	Photo      string       `json:"photo,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	Banner     string       `json:"banner,omitempty"`
	Links      []SocialLink `json:"links"`
}
