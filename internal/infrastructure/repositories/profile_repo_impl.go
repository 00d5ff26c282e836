package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/infrastructure/models"
)

// ProfileRepository implements profile-info operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile row. A taken username fails with ErrAlreadyExists.
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.ProfileInfo) error {
	m := profileToModel(profile)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUserID gets the profile row for an account
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.ProfileInfo, error) {
	var m models.ProfileInfo
	if err := getDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// GetByUsername resolves a unique username; ErrNotFound when free
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*entities.ProfileInfo, error) {
	var m models.ProfileInfo
	if err := getDB(ctx, r.db).WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// Update updates the profile's mutable fields
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.ProfileInfo) error {
	updates := map[string]interface{}{
		"occupation": profile.Occupation,
		"name":       profile.Name,
		"updated_at": time.Now(),
	}
	if profile.Username != "" {
		updates["username"] = profile.Username
	}

	result := getDB(ctx, r.db).WithContext(ctx).Model(&models.ProfileInfo{}).
		Where("user_id = ?", profile.UserID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func profileToModel(p *entities.ProfileInfo) *models.ProfileInfo {
	m := &models.ProfileInfo{
		UserID:     p.UserID,
		Occupation: p.Occupation,
		Name:       p.Name,
		Email:      p.Email,
	}
	if p.Username != "" {
		username := p.Username
		m.Username = &username
	}
	return m
}

func profileToEntity(m *models.ProfileInfo) *entities.ProfileInfo {
	p := &entities.ProfileInfo{
		UserID:     m.UserID,
		Occupation: m.Occupation,
		Name:       m.Name,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Username != nil {
		p.Username = *m.Username
	}
	return p
}

// SocialLinkRepository implements ordered social-link operations
type SocialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository creates a new social link repository
func NewSocialLinkRepository(db *gorm.DB) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

// ListByUser returns links ordered by display order ascending
func (r *SocialLinkRepository) ListByUser(ctx context.Context, userID string) ([]entities.SocialLink, error) {
	var linkModels []models.SocialLink
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("display_order ASC").
		Find(&linkModels).Error
	if err != nil {
		return nil, err
	}

	links := make([]entities.SocialLink, 0, len(linkModels))
	for _, m := range linkModels {
		links = append(links, entities.SocialLink{
			ID:           m.ID,
			UserID:       m.UserID,
			Network:      m.Network,
			URL:          m.URL,
			DisplayOrder: m.DisplayOrder,
			CreatedAt:    m.CreatedAt,
		})
	}
	return links, nil
}

// ReplaceForUser swaps the account's full link set in submitted order
func (r *SocialLinkRepository) ReplaceForUser(ctx context.Context, userID string, links []entities.SocialLink) error {
	db := getDB(ctx, r.db).WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&models.SocialLink{}).Error; err != nil {
		return err
	}

	for i, link := range links {
		m := &models.SocialLink{
			UserID:       userID,
			Network:      link.Network,
			URL:          link.URL,
			DisplayOrder: i,
		}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}
