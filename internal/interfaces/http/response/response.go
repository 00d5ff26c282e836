package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "dev-orbit.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status and
// code; bare sentinels are translated; anything else collapses to a 500
// without leaking internals.
func Error(c *gin.Context, err error) {
	appErr := translate(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithStatus sends an error response with an explicit status and code
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func translate(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid credentials", err)
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("token has expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden), errors.Is(err, domainerrors.ErrInactiveUser):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrCodeTooLong):
		return domainerrors.NewAppError(http.StatusUnprocessableEntity, domainerrors.CodeUnprocessable, "verification code too long", err)
	case errors.Is(err, domainerrors.ErrCodeBadFormat):
		return domainerrors.NewAppError(http.StatusUnprocessableEntity, domainerrors.CodeUnprocessable, "verification code must be 4 digits", err)
	case errors.Is(err, domainerrors.ErrUnprocessable):
		return domainerrors.Unprocessable("no valid fields to update")
	case errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "resource was modified concurrently", err)
	case errors.Is(err, domainerrors.ErrUnavailable):
		return domainerrors.Unavailable("storage unavailable")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest("bad request")
	default:
		return domainerrors.InternalError(err)
	}
}
