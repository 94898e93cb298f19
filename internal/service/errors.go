package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrIdentityRequired is returned when an owner-scoped operation is
	// attempted without an authenticated caller identity.
	ErrIdentityRequired = errors.New("caller identity is required")

	// ErrOwnershipMismatch is returned when an authenticated caller
	// addresses a record owned by a different user.
	ErrOwnershipMismatch = errors.New("record belongs to another user")

	// ErrInvalidResetCode is returned when a password-reset code does not
	// match, has expired, or was already used.
	ErrInvalidResetCode = errors.New("invalid or expired reset code")
)
