// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/avetrin/go-folio/internal/config"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/internal/utils"
	"github.com/avetrin/go-folio/models"
	"golang.org/x/crypto/bcrypt"
)

// usernamePattern restricts public handles to lowercase URL-safe slugs.
// Handles are normalised to lowercase before the check, so mixed-case input
// is accepted and stored canonically.
var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,29}$`)

const minPasswordLength = 8

// authService is the concrete implementation of [AuthService].
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing. The password-reset flow persists bcrypt-hashed one-time codes so
// an emailed code survives restarts and works against any instance.
type authService struct {
	userRepository  store.UserRepository
	resetRepository store.PasswordResetRepository
	mailer          Mailer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// otpDuration controls how long an emailed reset code remains valid.
	otpDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, resets store.PasswordResetRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  users,
		resetRepository: resets,
		mailer:          mailer,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		otpDuration:     cfg.OTPDuration,
		logger:          logger,
	}
}

// Register creates a new account.
//
// The username is normalised to lowercase and must be a URL-safe slug of 3
// to 30 characters; the email must parse; the password must be at least 8
// characters. The password is bcrypt-hashed before persistence.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] when any field fails validation.
//   - A wrapped storage error when the repository call fails (e.g. username
//     or email already taken, see [store.ErrUsernameAlreadyExists] and
//     [store.ErrEmailAlreadyExists]).
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	user.Email = strings.TrimSpace(user.Email)
	user.FullName = strings.TrimSpace(user.FullName)

	if !usernamePattern.MatchString(user.Username) {
		log.Error().Str("username", user.Username).Msg("invalid username provided")
		return models.User{}, fmt.Errorf("%w: username must be 3-30 lowercase letters, digits, '-' or '_'", ErrInvalidDataProvided)
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		log.Error().Str("email", user.Email).Msg("invalid email provided")
		return models.User{}, fmt.Errorf("%w: invalid email", ErrInvalidDataProvided)
	}
	if len(password) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record or:
//   - [ErrInvalidDataProvided] when email or password is empty.
//   - [ErrWrongPassword] when the account does not exist or the password
//     does not match. Both cases collapse into one error so a caller cannot
//     probe which emails are registered.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RequestPasswordReset starts the reset flow for the account behind email.
//
// A 6-digit one-time code is generated, bcrypt-hashed, and persisted with
// an expiry; the plain code exists only in the outbound mail. The method
// returns nil even when no account matches so the endpoint cannot be used
// to enumerate registered emails.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Msg("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("otp generation failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("otp hashing failed: %w", err)
	}

	_, err = a.resetRepository.Create(ctx, models.PasswordReset{
		Email:     user.Email,
		OTPHash:   string(hash),
		ExpiresAt: time.Now().Add(a.otpDuration),
	})
	if err != nil {
		log.Err(err).Msg("persisting password reset failed")
		return fmt.Errorf("persisting password reset failed: %w", err)
	}

	if err = a.mailer.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		// The code row is already persisted; a delivery retry can reuse it.
		log.Err(err).Msg("sending password reset code failed")
	}

	return nil
}

// ResetPassword completes the reset flow: it verifies the emailed code
// against the active persisted reset, updates the account's password hash,
// and consumes the code so it can never authorize a second change.
//
// Returns:
//   - [ErrInvalidDataProvided] when the new password is too short.
//   - [ErrInvalidResetCode] when no active reset exists or the code does
//     not match.
func (a *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	log := logger.FromContext(ctx)

	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	reset, err := a.resetRepository.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrResetNotFound) {
			return ErrInvalidResetCode
		}
		return fmt.Errorf("reset lookup failed: %w", err)
	}
	if !reset.Active(time.Now()) {
		return ErrInvalidResetCode
	}

	if err = bcrypt.CompareHashAndPassword([]byte(reset.OTPHash), []byte(code)); err != nil {
		log.Warn().Msg("wrong password reset code")
		return ErrInvalidResetCode
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, user.UserID, string(hash)); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	if err = a.resetRepository.Consume(ctx, reset.ID); err != nil {
		log.Err(err).Int64("resetID", reset.ID).Msg("consuming password reset failed")
		return fmt.Errorf("consuming password reset failed: %w", err)
	}

	return nil
}

// generateOTP returns a 6-digit zero-padded one-time code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
