package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/internal/interfaces/http/response"
	"dev-orbit.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// PrincipalKey is the context key for the resolved principal
	PrincipalKey = "principal"
)

// Known token scopes
const (
	ScopeUserRead  = "user:read"
	ScopeUserWrite = "user:write"
	ScopeEmailSend = "email:send"
	ScopeAdmin     = "admin"
	ScopeMe        = "me"
)

func challenge(c *gin.Context, status int, header, code, message string) {
	c.Header("WWW-Authenticate", header)
	response.ErrorWithStatus(c, status, code, message)
	c.Abort()
}

// AuthMiddleware validates the bearer token and resolves its subject to
// a live account. The failure reason (bad token vs unknown account) is
// never disclosed beyond the standard challenge.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			challenge(c, http.StatusUnauthorized, `Bearer`, domainerrors.CodeUnauthorized, "missing bearer token")
			return
		}

		claims, err := jwtService.Validate(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			message := "invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = "token has expired"
			}
			challenge(c, http.StatusUnauthorized, `Bearer error="invalid_token"`, domainerrors.CodeUnauthorized, message)
			return
		}
		if claims.TokenType != jwt.TokenTypeAccess {
			challenge(c, http.StatusUnauthorized, `Bearer error="invalid_token"`, domainerrors.CodeUnauthorized, "invalid token")
			return
		}

		user, err := userRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			challenge(c, http.StatusUnauthorized, `Bearer error="invalid_token"`, domainerrors.CodeUnauthorized, "invalid token")
			return
		}

		c.Set(PrincipalKey, &entities.Principal{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.FullName(),
			Active: user.Active,
			Scopes: claims.Scopes(),
		})
		c.Next()
	}
}

// GetPrincipal gets the resolved principal from context
func GetPrincipal(c *gin.Context) (*entities.Principal, bool) {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*entities.Principal)
	return p, ok
}

// RequireScopes creates a middleware that requires every listed scope.
// A missing scope answers 403 naming the scopes the route needs.
func RequireScopes(scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			challenge(c, http.StatusUnauthorized, `Bearer`, domainerrors.CodeUnauthorized, "missing bearer token")
			return
		}

		granted := make(map[string]bool, len(principal.Scopes))
		for _, s := range principal.Scopes {
			granted[s] = true
		}
		for _, required := range scopes {
			if !granted[required] {
				challenge(c, http.StatusForbidden,
					`Bearer error="insufficient_scope", scope="`+strings.Join(scopes, " ")+`"`,
					domainerrors.CodeForbidden,
					"required scopes: "+strings.Join(scopes, " "))
				return
			}
		}
		c.Next()
	}
}

// RequireActiveUser rejects requests from accounts that have not
// completed email verification.
func RequireActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			challenge(c, http.StatusUnauthorized, `Bearer`, domainerrors.CodeUnauthorized, "missing bearer token")
			return
		}
		if !principal.Active {
			response.ErrorWithStatus(c, http.StatusForbidden, domainerrors.CodeForbidden, "account is not verified")
			c.Abort()
			return
		}
		c.Next()
	}
}
