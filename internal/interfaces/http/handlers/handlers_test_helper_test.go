package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dev-orbit.backend/internal/domain/entities"
	"dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/internal/interfaces/http/middleware"
	"dev-orbit.backend/pkg/jwt"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Activate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.ProfileInfo) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.ProfileInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProfileInfo), args.Error(1)
}

func (m *MockProfileRepository) GetByUsername(ctx context.Context, username string) (*entities.ProfileInfo, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProfileInfo), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.ProfileInfo) error {
	return m.Called(ctx, profile).Error(0)
}

// Mock SocialLinkRepository
type MockSocialLinkRepository struct {
	mock.Mock
}

func (m *MockSocialLinkRepository) ListByUser(ctx context.Context, userID string) ([]entities.SocialLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SocialLink), args.Error(1)
}

func (m *MockSocialLinkRepository) ReplaceForUser(ctx context.Context, userID string, links []entities.SocialLink) error {
	return m.Called(ctx, userID, links).Error(0)
}

// Mock PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entities.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) GetByOwner(ctx context.Context, ownerID, postID string) (*entities.Post, error) {
	args := m.Called(ctx, ownerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *MockPostRepository) ListFeed(ctx context.Context) ([]entities.PostView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PostView), args.Error(1)
}

func (m *MockPostRepository) Save(ctx context.Context, post *entities.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) DeleteByOwner(ctx context.Context, ownerID, postID string) error {
	return m.Called(ctx, ownerID, postID).Error(0)
}

func (m *MockPostRepository) AdjustLikes(ctx context.Context, postID string, delta int) error {
	return m.Called(ctx, postID, delta).Error(0)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, userID, codeHash string, expiresAt time.Time) error {
	return m.Called(ctx, userID, codeHash, expiresAt).Error(0)
}

func (m *MockVerificationRepository) GetPending(ctx context.Context, userID string) (*repositories.PendingVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.PendingVerification), args.Error(1)
}

func (m *MockVerificationRepository) Consume(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, toAddress, subject, body string) bool {
	return m.Called(ctx, toAddress, subject, body).Bool(0)
}

// Mock TokenStore
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RegisterRefresh(ctx context.Context, jti, subject string, ttl time.Duration) error {
	return m.Called(ctx, jti, subject, ttl).Error(0)
}

func (m *MockTokenStore) ConsumeRefresh(ctx context.Context, jti string) (string, error) {
	args := m.Called(ctx, jti)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) RevokeRefresh(ctx context.Context, jti string) error {
	return m.Called(ctx, jti).Error(0)
}

func (m *MockTokenStore) AcquireResendCooldown(ctx context.Context, email string, window time.Duration) (bool, error) {
	args := m.Called(ctx, email, window)
	return args.Bool(0), args.Error(1)
}

// fakeUnitOfWork runs the unit inline without a real transaction
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", 30*time.Minute, 7*24*time.Hour)
}

// asPrincipal injects an already-resolved principal, standing in for the
// auth middleware on guarded routes
func asPrincipal(p *entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, p)
		c.Next()
	}
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
