package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/usecases"
	"dev-orbit.backend/pkg/crypto"
	"dev-orbit.backend/pkg/jwt"
	redispkg "dev-orbit.backend/pkg/redis"
)

func newAuthUsecaseForTest(
	userRepo *MockUserRepository,
	profileRepo *MockProfileRepository,
	linkRepo *MockSocialLinkRepository,
	tokenStore *MockTokenStore,
) *usecases.AuthUsecase {
	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, profileRepo, linkRepo, fakeUnitOfWork{}, jwtSvc, tokenStore)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	linkRepo := new(MockSocialLinkRepository)
	uc := newAuthUsecaseForTest(userRepo, profileRepo, linkRepo, new(MockTokenStore))
	ctx := context.Background()

	profileRepo.On("GetByUsername", ctx, "ada").Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(nil).Once()
	profileRepo.On("Create", ctx, mock.AnythingOfType("*entities.ProfileInfo")).Return(nil).Once()
	linkRepo.On("ReplaceForUser", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]entities.SocialLink")).Return(nil).Once()

	user, err := uc.Register(ctx, &entities.CreateUserInput{
		Email:     "Ada@Mail.com",
		FirstName: "ada",
		LastName:  "Lovelace",
		Password:  "super-secret-pw",
		Username:  "ada",
		Links:     []entities.SocialLinkInput{{Network: "github", URL: "https://github.com/ada"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@mail.com", user.Email, "email is stored lower-cased")
	assert.Len(t, user.ID, 10)
	assert.False(t, user.Active, "accounts start inactive until verification")
	assert.True(t, user.IsFirstLogin)
	assert.True(t, crypto.CheckPassword("super-secret-pw", user.PasswordHash))
	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
	linkRepo.AssertExpectations(t)
}

func TestAuthUsecase_Register_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	uc := newAuthUsecaseForTest(userRepo, profileRepo, new(MockSocialLinkRepository), new(MockTokenStore))
	ctx := context.Background()

	profileRepo.On("GetByUsername", ctx, "taken").Return(&entities.ProfileInfo{
		UserID: "usr0000001", Username: "taken",
	}, nil).Once()

	_, err := uc.Register(ctx, &entities.CreateUserInput{
		Email:     "new@mail.com",
		FirstName: "New",
		LastName:  "Person",
		Password:  "super-secret-pw",
		Username:  "taken",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	uc := newAuthUsecaseForTest(userRepo, profileRepo, new(MockSocialLinkRepository), new(MockTokenStore))
	ctx := context.Background()

	userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(domainerrors.ErrAlreadyExists).Once()

	_, err := uc.Register(ctx, &entities.CreateUserInput{
		Email:     "dup@mail.com",
		FirstName: "Dup",
		LastName:  "Person",
		Password:  "super-secret-pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Login_InvalidCredentialCases(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, new(MockProfileRepository), new(MockSocialLinkRepository), new(MockTokenStore))
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "missing@mail.com").Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.Login(ctx, &entities.LoginInput{Email: "missing@mail.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	hashed, _ := crypto.HashPassword("correct-password")
	userRepo.On("GetByEmail", ctx, "user@mail.com").Return(&entities.User{
		ID: "usr0000001", Email: "user@mail.com", PasswordHash: hashed,
	}, nil).Once()
	_, err = uc.Login(ctx, &entities.LoginInput{Email: "user@mail.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_IssuesScopedPair(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenStore := new(MockTokenStore)
	uc := newAuthUsecaseForTest(userRepo, new(MockProfileRepository), new(MockSocialLinkRepository), tokenStore)
	ctx := context.Background()

	hashed, _ := crypto.HashPassword("correct-password")
	userRepo.On("GetByEmail", ctx, "user@mail.com").Return(&entities.User{
		ID: "usr0000001", Email: "user@mail.com", PasswordHash: hashed, Active: true,
	}, nil).Once()
	tokenStore.On("RegisterRefresh", ctx, mock.AnythingOfType("string"), "user@mail.com", 7*24*time.Hour).Return(nil).Once()

	resp, err := uc.Login(ctx, &entities.LoginInput{
		Email:    "User@Mail.com",
		Password: "correct-password",
		Scopes:   []string{"user:read", "user:write"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64((30 * time.Minute).Seconds()), resp.ExpiresIn)

	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	claims, err := jwtSvc.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user@mail.com", claims.Subject)
	assert.Equal(t, []string{"user:read", "user:write"}, claims.Scopes())
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

	refreshClaims, err := jwtSvc.ValidateRefresh(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, refreshClaims.UserID)
	tokenStore.AssertExpectations(t)
}

func TestAuthUsecase_Refresh_RotatesSingleUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenStore := new(MockTokenStore)
	uc := newAuthUsecaseForTest(userRepo, new(MockProfileRepository), new(MockSocialLinkRepository), tokenStore)
	ctx := context.Background()

	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	refreshToken, jti, err := jwtSvc.Issue("user@mail.com", "usr0000001", []string{"user:write"}, jwt.TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	tokenStore.On("ConsumeRefresh", ctx, jti).Return("user@mail.com", nil).Once()
	userRepo.On("GetByID", ctx, "usr0000001").Return(&entities.User{
		ID: "usr0000001", Email: "user@mail.com", Active: true,
	}, nil).Once()
	tokenStore.On("RegisterRefresh", ctx, mock.AnythingOfType("string"), "user@mail.com", 7*24*time.Hour).Return(nil).Once()

	pair, err := uc.RefreshToken(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, refreshToken, pair.RefreshToken)

	// Scopes survive rotation verbatim
	claims, err := jwtSvc.Validate(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, []string{"user:write"}, claims.Scopes())

	// The same token presented again has already been consumed
	tokenStore.On("ConsumeRefresh", ctx, jti).Return("", redispkg.ErrTokenConsumed).Once()
	_, err = uc.RefreshToken(ctx, refreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockProfileRepository), new(MockSocialLinkRepository), new(MockTokenStore))

	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	accessToken, _, err := jwtSvc.Issue("user@mail.com", "usr0000001", nil, jwt.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Refresh_ExpiredToken(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockProfileRepository), new(MockSocialLinkRepository), new(MockTokenStore))

	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	expired, _, err := jwtSvc.Issue("user@mail.com", "usr0000001", nil, jwt.TokenTypeRefresh, -time.Minute)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), expired)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthUsecase_Logout_RevokesRefreshJTI(t *testing.T) {
	tokenStore := new(MockTokenStore)
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockProfileRepository), new(MockSocialLinkRepository), tokenStore)

	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	refreshToken, jti, err := jwtSvc.Issue("ada@mail.com", "usr0000001", nil, jwt.TokenTypeRefresh, time.Hour)
	require.NoError(t, err)

	tokenStore.On("RevokeRefresh", mock.Anything, jti).Return(nil).Once()
	require.NoError(t, uc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}

func TestAuthUsecase_Logout_RejectsInvalidToken(t *testing.T) {
	tokenStore := new(MockTokenStore)
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockProfileRepository), new(MockSocialLinkRepository), tokenStore)

	assert.ErrorIs(t, uc.Logout(context.Background(), "not-a-token"), domainerrors.ErrUnauthorized)

	// Access tokens cannot be revoked through logout either
	jwtSvc := jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
	accessToken, _, err := jwtSvc.Issue("ada@mail.com", "usr0000001", nil, jwt.TokenTypeAccess, time.Hour)
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Logout(context.Background(), accessToken), domainerrors.ErrUnauthorized)

	tokenStore.AssertNotCalled(t, "RevokeRefresh", mock.Anything, mock.Anything)
}
