package usecases

import (
	"context"
	"errors"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/pkg/utils"
)

// UserUsecase handles account and profile business logic
type UserUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	linkRepo    repositories.SocialLinkRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	linkRepo repositories.SocialLinkRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		linkRepo:    linkRepo,
	}
}

// GetMe returns the account with its profile and social links. An
// account without a profile record yields a nil profile, not an error.
func (u *UserUsecase) GetMe(ctx context.Context, userID string) (*entities.User, *entities.ProfileInfo, []entities.SocialLink, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil, nil, err
	}

	links, err := u.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	return user, profile, links, nil
}

// GetPublicProfile resolves a username to its public profile card
func (u *UserUsecase) GetPublicProfile(ctx context.Context, username string) (*entities.PublicProfile, error) {
	profile, err := u.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	links, err := u.linkRepo.ListByUser(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	return &entities.PublicProfile{
		UserID:     user.ID,
		Username:   profile.Username,
		Name:       profile.Name,
		Occupation: profile.Occupation,
		Photo:      user.Photo,
		Bio:        user.Bio,
		Banner:     user.Banner,
		Links:      links,
	}, nil
}

// UpdateProfile applies a presence-aware partial update to the account's
// bio, photo, banner and occupation, and replaces the social-link set
// when one is submitted.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID string, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.Bio.Valid {
		user.Bio = input.Bio.String
		changed = true
	}
	if input.Photo.Valid {
		user.Photo = input.Photo.String
		changed = true
	}
	if input.Banner.Valid {
		user.Banner = input.Banner.String
		changed = true
	}
	if changed {
		user.IsFirstLogin = false
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if input.Occupation.Valid {
		profile, err := u.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
			profile = &entities.ProfileInfo{
				UserID: userID,
				Name:   user.FullName(),
				Email:  user.Email,
			}
			if err := u.profileRepo.Create(ctx, profile); err != nil {
				return nil, err
			}
		}
		profile.Occupation = input.Occupation.String
		if err := u.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
		changed = true
	}

	if input.Links != nil {
		links := make([]entities.SocialLink, 0, len(input.Links))
		for _, l := range input.Links {
			links = append(links, entities.SocialLink{Network: l.Network, URL: l.URL})
		}
		if err := u.linkRepo.ReplaceForUser(ctx, userID, links); err != nil {
			return nil, err
		}
		changed = true
	}

	if !changed {
		return nil, domainerrors.ErrUnprocessable
	}

	return user, nil
}

// DeleteUser soft deletes an account; its posts drop out of the feed
// with it
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	return u.userRepo.SoftDelete(ctx, id)
}

// ListUsers returns a paginated account listing for administrators
func (u *UserUsecase) ListUsers(ctx context.Context, search string, params utils.PaginationParams) ([]*entities.User, utils.PaginationMeta, error) {
	users, total, err := u.userRepo.List(ctx, search, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
