package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/pkg/crypto"
	"dev-orbit.backend/pkg/jwt"
	"dev-orbit.backend/pkg/redis"
	"dev-orbit.backend/pkg/utils"
)

// TokenStore tracks single-use refresh tokens and resend cooldowns
type TokenStore interface {
	RegisterRefresh(ctx context.Context, jti, subject string, ttl time.Duration) error
	ConsumeRefresh(ctx context.Context, jti string) (string, error)
	RevokeRefresh(ctx context.Context, jti string) error
	AcquireResendCooldown(ctx context.Context, email string, window time.Duration) (bool, error)
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	linkRepo    repositories.SocialLinkRepository
	uow         repositories.UnitOfWork
	jwtService  *jwt.JWTService
	tokenStore  TokenStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	linkRepo repositories.SocialLinkRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	tokenStore TokenStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		linkRepo:    linkRepo,
		uow:         uow,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Register creates an account with its profile and social links in one
// transaction. The account starts inactive until email verification.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateShortID()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           id,
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		IsFirstLogin: true,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if input.Username != "" {
			_, err := u.profileRepo.GetByUsername(txCtx, input.Username)
			if err == nil {
				return domainerrors.Conflict("username already taken")
			}
			if !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
		}

		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		profile := &entities.ProfileInfo{
			UserID:     user.ID,
			Username:   input.Username,
			Occupation: input.Occupation,
			Name:       user.FullName(),
			Email:      user.Email,
		}
		if err := u.profileRepo.Create(txCtx, profile); err != nil {
			return err
		}

		if len(input.Links) > 0 {
			links := make([]entities.SocialLink, 0, len(input.Links))
			for _, l := range input.Links {
				links = append(links, entities.SocialLink{Network: l.Network, URL: l.URL})
			}
			if err := u.linkRepo.ReplaceForUser(txCtx, user.ID, links); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a token pair carrying the
// scopes the client asked for. The refresh token is registered for
// single-use rotation.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, refreshJTI, err := u.jwtService.IssuePair(user.Email, user.ID, input.Scopes)
	if err != nil {
		return nil, err
	}
	if err := u.tokenStore.RegisterRefresh(ctx, refreshJTI, user.Email, u.jwtService.RefreshExpiry()); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
		User:         user,
	}, nil
}

// RefreshToken rotates a refresh token: the presented token is consumed
// exactly once and a fresh pair with the same scopes is issued. Replaying
// a consumed token fails with ErrUnauthorized.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	if _, err := u.tokenStore.ConsumeRefresh(ctx, claims.ID); err != nil {
		if errors.Is(err, redis.ErrTokenConsumed) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}

	pair, refreshJTI, err := u.jwtService.IssuePair(user.Email, user.ID, claims.Scopes())
	if err != nil {
		return nil, err
	}
	if err := u.tokenStore.RegisterRefresh(ctx, refreshJTI, user.Email, u.jwtService.RefreshExpiry()); err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout revokes the presented refresh token so it can no longer be
// rotated. Revoking an already consumed token is a no-op.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.jwtService.ValidateRefresh(refreshToken)
	if err != nil {
		return domainerrors.ErrUnauthorized
	}
	return u.tokenStore.RevokeRefresh(ctx, claims.ID)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
