package entities

import (
	"strings"
	"time"
	"unicode"
)

// User represents an account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Photo        string    `json:"photo,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Banner       string    `json:"banner,omitempty"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName returns the display name used for denormalized author info
func (u *User) FullName() string {
	first := u.FirstName
	if first != "" {
		r := []rune(first)
		r[0] = unicode.ToUpper(r[0])
		first = string(r)
	}
	return strings.TrimSpace(first + " " + u.LastName)
}

// CreateUserInput represents input for registering an account
type CreateUserInput struct {
	Email      string            `json:"email" binding:"required,email"`
	FirstName  string            `json:"firstName" binding:"required,min=2,max=100"`
	LastName   string            `json:"lastName" binding:"required,min=1,max=100"`
	Password   string            `json:"password" binding:"required,min=8"`
	Username   string            `json:"username" binding:"omitempty,min=4,max=120"`
	Occupation string            `json:"occupation" binding:"omitempty,max=120"`
	Links      []SocialLinkInput `json:"links" binding:"omitempty,dive"`
}

// LoginInput represents input for login; Scopes are the scopes the
// client requests for the issued token (may be empty).
type LoginInput struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Scopes   []string `json:"scopes"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         *User  `json:"user"`
}

// Principal is the resolved, authenticated identity attached to a
// request after the guard succeeds.
type Principal struct {
	UserID string
	Email  string
	Name   string
	Active bool
	Scopes []string
}
