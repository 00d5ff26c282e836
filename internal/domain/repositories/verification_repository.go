package repositories

import (
	"context"
	"time"
)

// PendingVerification is a stored, unconsumed verification code
type PendingVerification struct {
	ID        string
	UserID    string
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code's lifetime has passed
func (v *PendingVerification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// VerificationRepository stores one-time email verification codes.
// Codes are kept hashed at rest and consumed exactly once.
type VerificationRepository interface {
	// Create stores a new pending code, superseding any earlier pending
	// code for the same account
	Create(ctx context.Context, userID, codeHash string, expiresAt time.Time) error
	// GetPending returns the account's current unconsumed code,
	// ErrNotFound when none exists
	GetPending(ctx context.Context, userID string) (*PendingVerification, error)
	// Consume marks a pending code used; already-consumed → ErrNotFound
	Consume(ctx context.Context, id string) error
}

// Notifier delivers messages to an address, trying one or more
// providers and collapsing failures to false.
type Notifier interface {
	Send(ctx context.Context, toAddress, subject, body string) bool
}
