package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "dev-orbit.backend/internal/domain/errors"
	domainrepos "dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/internal/infrastructure/models"
)

// VerificationRepository stores one-time email verification codes,
// hashed at rest.
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create stores a new pending code. Any earlier unconsumed code for the
// same account is superseded.
func (r *VerificationRepository) Create(ctx context.Context, userID, codeHash string, expiresAt time.Time) error {
	db := getDB(ctx, r.db).WithContext(ctx)

	err := db.Where("user_id = ? AND consumed_at IS NULL", userID).
		Delete(&models.EmailVerification{}).Error
	if err != nil {
		return err
	}

	m := &models.EmailVerification{
		ID:        uuid.New(),
		UserID:    userID,
		CodeHash:  codeHash,
		ExpiresAt: expiresAt,
	}
	return db.Create(m).Error
}

// GetPending returns the account's current unconsumed code
func (r *VerificationRepository) GetPending(ctx context.Context, userID string) (*domainrepos.PendingVerification, error) {
	var m models.EmailVerification
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND consumed_at IS NULL", userID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &domainrepos.PendingVerification{
		ID:        m.ID.String(),
		UserID:    m.UserID,
		CodeHash:  m.CodeHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// Consume marks a pending code used; consuming twice fails with ErrNotFound
func (r *VerificationRepository) Consume(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).WithContext(ctx).
		Model(&models.EmailVerification{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
