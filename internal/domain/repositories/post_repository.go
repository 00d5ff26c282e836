package repositories

import (
	"context"

	"dev-orbit.backend/internal/domain/entities"
)

// PostRepository defines post data operations. All mutating lookups are
// ownership-scoped: they match on (owner, id) so a foreign post behaves
// exactly like a missing one.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	// GetByOwner loads a post scoped by owner; foreign or missing → ErrNotFound
	GetByOwner(ctx context.Context, ownerID, postID string) (*entities.Post, error)
	// ListFeed returns published, non-deleted posts annotated with author
	// display info, newest first
	ListFeed(ctx context.Context) ([]entities.PostView, error)
	// Save persists a loaded post guarded by its updated_at snapshot;
	// a concurrent write in between fails with ErrConflict
	Save(ctx context.Context, post *entities.Post) error
	// DeleteByOwner removes a post scoped by owner; zero rows → ErrNotFound
	DeleteByOwner(ctx context.Context, ownerID, postID string) error
	// AdjustLikes changes the like counter by delta, never below zero
	AdjustLikes(ctx context.Context, postID string, delta int) error
}
