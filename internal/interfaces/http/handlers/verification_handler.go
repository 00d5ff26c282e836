package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/interfaces/http/response"
	"dev-orbit.backend/internal/usecases"
)

// VerificationHandler handles email verification endpoints
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// RequestCode sends a fresh verification code. The response never
// reveals whether the address belongs to an account.
// POST /api/v1/verify/request-code
func (h *VerificationHandler) RequestCode(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sent := h.verificationUsecase.RequestCode(c.Request.Context(), input.Email)
	response.Success(c, http.StatusOK, gin.H{"sent": sent})
}

// ConfirmCode checks a submitted code and activates the account
// POST /api/v1/verify/confirm
func (h *VerificationHandler) ConfirmCode(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUsecase.ConfirmCode(c.Request.Context(), input.Email, input.Code); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Email verified successfully"})
}
