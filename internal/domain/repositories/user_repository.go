package repositories

import (
	"context"

	"dev-orbit.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	// Create inserts a new account; a taken email fails with ErrAlreadyExists
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// Activate flips the account's active flag on
	Activate(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error)
}

// ProfileRepository defines profile-info operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.ProfileInfo) error
	GetByUserID(ctx context.Context, userID string) (*entities.ProfileInfo, error)
	// GetByUsername resolves the unique username, ErrNotFound when free
	GetByUsername(ctx context.Context, username string) (*entities.ProfileInfo, error)
	Update(ctx context.Context, profile *entities.ProfileInfo) error
}

// SocialLinkRepository defines ordered social-link operations
type SocialLinkRepository interface {
	// ListByUser returns links ordered by display order ascending
	ListByUser(ctx context.Context, userID string) ([]entities.SocialLink, error)
	// ReplaceForUser swaps the full link set in display order
	ReplaceForUser(ctx context.Context, userID string, links []entities.SocialLink) error
}

// UnitOfWork defines the interface for atomic multi-repository operations
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
