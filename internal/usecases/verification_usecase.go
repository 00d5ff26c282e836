package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/domain/repositories"
	"dev-orbit.backend/pkg/crypto"
	"dev-orbit.backend/pkg/logger"
)

const (
	verificationSubject = "Verify your DEV ORBIT account"
	codeLength          = 4
)

// VerificationUsecase issues and confirms one-time email verification
// codes. Codes are stored hashed, expire, and are consumed exactly once.
type VerificationUsecase struct {
	userRepo   repositories.UserRepository
	verifRepo  repositories.VerificationRepository
	notifier   repositories.Notifier
	tokenStore TokenStore
	codeTTL    time.Duration
	cooldown   time.Duration
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	userRepo repositories.UserRepository,
	verifRepo repositories.VerificationRepository,
	notifier repositories.Notifier,
	tokenStore TokenStore,
	codeTTL time.Duration,
	cooldown time.Duration,
) *VerificationUsecase {
	return &VerificationUsecase{
		userRepo:   userRepo,
		verifRepo:  verifRepo,
		notifier:   notifier,
		tokenStore: tokenStore,
		codeTTL:    codeTTL,
		cooldown:   cooldown,
	}
}

// RequestCode generates and delivers a fresh verification code for the
// address. The outcome is a bare boolean: an unknown address, a still
// live pending code, an active cooldown window and every storage or
// delivery failure all collapse to false, so callers learn nothing about
// account existence.
func (u *VerificationUsecase) RequestCode(ctx context.Context, email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false
	}

	// A live pending code blocks re-issue only for an already active
	// account. An inactive account may supersede its pending code (lost
	// email); the redis cooldown below throttles how often.
	pending, err := u.verifRepo.GetPending(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return false
	}
	if pending != nil && !pending.Expired(time.Now()) && user.Active {
		return false
	}

	ok, err := u.tokenStore.AcquireResendCooldown(ctx, email, u.cooldown)
	if err != nil || !ok {
		return false
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return false
	}
	codeHash, err := crypto.HashCode(code)
	if err != nil {
		return false
	}

	if err := u.verifRepo.Create(ctx, user.ID, codeHash, time.Now().Add(u.codeTTL)); err != nil {
		logger.Error(ctx, "failed to store verification code", zap.Error(err))
		return false
	}

	body := "Your verification code is " + code + ". It expires in " +
		u.codeTTL.String() + "."
	return u.notifier.Send(ctx, email, verificationSubject, body)
}

// ConfirmCode checks a submitted code against the account's pending one
// and activates the account on a match. The code is single-use: a second
// confirm with the same code fails.
func (u *VerificationUsecase) ConfirmCode(ctx context.Context, email, code string) error {
	if len(code) > codeLength {
		return domainerrors.ErrCodeTooLong
	}
	if !isFourDigits(code) {
		return domainerrors.ErrCodeBadFormat
	}

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	pending, err := u.verifRepo.GetPending(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrUnauthorized
		}
		return err
	}
	if pending.Expired(time.Now()) || !crypto.CheckCode(code, pending.CodeHash) {
		return domainerrors.ErrUnauthorized
	}

	if err := u.verifRepo.Consume(ctx, pending.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrUnauthorized
		}
		return err
	}

	return u.userRepo.Activate(ctx, user.ID)
}

func isFourDigits(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
