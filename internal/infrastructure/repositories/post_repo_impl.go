package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/infrastructure/models"
)

// PostRepository implements post data operations
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	m := &models.Post{
		ID:             post.ID,
		UserID:         post.UserID,
		Title:          post.Title,
		Content:        post.Content,
		AuthorNickname: post.AuthorNickname,
		Photo:          post.Photo,
		QuantityLikes:  post.QuantityLikes,
		Category:       post.Category,
		Tags:           encodeTags(post.Tags),
		IsPublished:    post.IsPublished,
		IsDeleted:      post.IsDeleted,
	}

	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	post.CreatedAt = m.CreatedAt
	post.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByOwner loads a post scoped by (owner, id). A foreign post behaves
// exactly like a missing one.
func (r *PostRepository) GetByOwner(ctx context.Context, ownerID, postID string) (*entities.Post, error) {
	var m models.Post
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, postID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return postToEntity(&m), nil
}

// feedRow carries a post joined with its author's display info
type feedRow struct {
	models.Post
	AuthorFirstName string
	AuthorLastName  string
	AuthorPhoto     string
}

// ListFeed returns published, non-deleted posts annotated with author
// display info, newest first
func (r *PostRepository) ListFeed(ctx context.Context) ([]entities.PostView, error) {
	var rows []feedRow
	err := getDB(ctx, r.db).WithContext(ctx).
		Table("posts").
		Select("posts.*, users.first_name AS author_first_name, users.last_name AS author_last_name, users.photo AS author_photo").
		Joins("JOIN users ON users.id = posts.user_id AND users.deleted_at IS NULL").
		Where("posts.is_deleted = ? AND posts.is_published = ?", false, true).
		Order("posts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]entities.PostView, 0, len(rows))
	for _, row := range rows {
		author := &entities.User{FirstName: row.AuthorFirstName, LastName: row.AuthorLastName}
		views = append(views, entities.PostView{
			PostID:        row.ID,
			UserID:        row.UserID,
			Title:         row.Title,
			Content:       row.Content,
			Photo:         row.Photo,
			QuantityLikes: row.QuantityLikes,
			Category:      row.Category,
			Tags:          decodeTags(row.Tags),
			AuthorName:    author.FullName(),
			AuthorPhoto:   row.AuthorPhoto,
			CreatedAt:     row.CreatedAt,
		})
	}
	return views, nil
}

// Save persists a loaded post guarded by its updated_at snapshot. A
// concurrent write in between fails with ErrConflict.
func (r *PostRepository) Save(ctx context.Context, post *entities.Post) error {
	now := time.Now()
	updates := map[string]interface{}{
		"title":        post.Title,
		"content":      post.Content,
		"photo":        post.Photo,
		"tags":         encodeTags(post.Tags),
		"is_published": post.IsPublished,
		"updated_at":   now,
	}

	result := getDB(ctx, r.db).WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND user_id = ? AND updated_at = ?", post.ID, post.UserID, post.UpdatedAt).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}

	post.UpdatedAt = now
	return nil
}

// DeleteByOwner removes a post scoped by (owner, id); zero rows → ErrNotFound
func (r *PostRepository) DeleteByOwner(ctx context.Context, ownerID, postID string) error {
	result := getDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, postID).
		Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AdjustLikes changes the like counter by delta; the counter never goes
// below zero. Decrementing an already-zero counter is a no-op.
func (r *PostRepository) AdjustLikes(ctx context.Context, postID string, delta int) error {
	db := getDB(ctx, r.db).WithContext(ctx)

	query := db.Model(&models.Post{}).Where("id = ?", postID)
	if delta < 0 {
		query = query.Where("quantity_likes > 0")
	}

	result := query.UpdateColumn("quantity_likes", gorm.Expr("quantity_likes + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
	}
	return nil
}

func postToEntity(m *models.Post) *entities.Post {
	return &entities.Post{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Content:        m.Content,
		AuthorNickname: m.AuthorNickname,
		Photo:          m.Photo,
		QuantityLikes:  m.QuantityLikes,
		Category:       m.Category,
		Tags:           decodeTags(m.Tags),
		IsPublished:    m.IsPublished,
		IsDeleted:      m.IsDeleted,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}
