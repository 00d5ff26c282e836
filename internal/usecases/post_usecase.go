package usecases

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/pkg/utils"
)

// Legacy client placeholders sent for untouched string fields
const (
	placeholderString = "string"
	placeholderSpace  = " "
)

// PostUsecase handles post business logic
type PostUsecase struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostUsecase creates a new post usecase
func NewPostUsecase(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostUsecase {
	return &PostUsecase{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// GetFeed returns published, non-deleted posts newest first, annotated
// with author display info. A storage connectivity failure surfaces as
// ErrUnavailable so the transport can answer 503 rather than 500.
func (u *PostUsecase) GetFeed(ctx context.Context) ([]entities.PostView, error) {
	views, err := u.postRepo.ListFeed(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrInvalidDB) || errors.Is(err, driver.ErrBadConn) {
			return nil, domainerrors.ErrUnavailable
		}
		return nil, err
	}
	return views, nil
}

// CreatePost inserts a post owned by ownerID. The author's display name
// is denormalized onto the post at creation and never synced afterwards.
func (u *PostUsecase) CreatePost(ctx context.Context, ownerID string, input *entities.CreatePostInput) (*entities.CreatePostResult, error) {
	owner, err := u.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !owner.Active {
		return nil, domainerrors.ErrForbidden
	}

	id, err := utils.GenerateShortID()
	if err != nil {
		return nil, err
	}

	post := &entities.Post{
		ID:             id,
		UserID:         owner.ID,
		Title:          input.Title,
		Content:        input.Content,
		AuthorNickname: owner.FullName(),
		Photo:          input.Photo.String,
		Category:       input.Category,
		Tags:           input.Tags,
		IsPublished:    true,
	}

	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return &entities.CreatePostResult{ID: post.ID, Title: post.Title}, nil
}

// UpdatePost applies a presence-aware partial update to an owned post.
// Absent fields and legacy placeholder values leave the stored value
// untouched; submitting nothing usable fails with ErrUnprocessable. The
// save is guarded against concurrent writes.
func (u *PostUsecase) UpdatePost(ctx context.Context, ownerID, postID string, input *entities.UpdatePostInput) (*entities.UpdatePostResult, error) {
	post, err := u.postRepo.GetByOwner(ctx, ownerID, postID)
	if err != nil {
		return nil, err
	}

	updated := map[string]interface{}{}

	if v, ok := usableString(input.Title); ok {
		post.Title = v
		updated["title"] = v
	}
	if v, ok := usableString(input.Content); ok {
		post.Content = v
		updated["content"] = v
	}
	if v, ok := usableString(input.Photo); ok {
		post.Photo = v
		updated["photo"] = v
	}
	if input.IsPublished.Valid {
		post.IsPublished = input.IsPublished.Bool
		updated["is_published"] = post.IsPublished
	}
	if input.Tags != nil {
		post.Tags = input.Tags
		updated["tags"] = post.Tags
	}

	if len(updated) == 0 {
		return nil, domainerrors.ErrUnprocessable
	}

	if err := u.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	return &entities.UpdatePostResult{
		PostID:        post.ID,
		UpdatedFields: updated,
		UpdatedAt:     post.UpdatedAt,
	}, nil
}

// DeletePost removes an owned post. A foreign or missing post fails with
// ErrNotFound; ownership is never disclosed.
func (u *PostUsecase) DeletePost(ctx context.Context, ownerID, postID string) error {
	return u.postRepo.DeleteByOwner(ctx, ownerID, postID)
}

// LikePost increments the post's like counter
func (u *PostUsecase) LikePost(ctx context.Context, postID string) error {
	return u.postRepo.AdjustLikes(ctx, postID, 1)
}

// UnlikePost decrements the post's like counter, never below zero
func (u *PostUsecase) UnlikePost(ctx context.Context, postID string) error {
	return u.postRepo.AdjustLikes(ctx, postID, -1)
}

// usableString reports whether an optional string field was actually
// submitted. Placeholder values some clients send for untouched fields
// count as absent.
func usableString(v null.String) (string, bool) {
	if !v.Valid {
		return "", false
	}
	if v.String == placeholderString || v.String == placeholderSpace {
		return "", false
	}
	return v.String, true
}
