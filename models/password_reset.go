package models

import "time"

// PasswordReset is a persisted one-time password-reset code.
//
// The row replaces the in-memory OTP map a naive implementation would use:
// persisting the code (hashed) with an expiry means reset state survives
// process restarts and is shared across server instances. A consumed or
// expired row can never authorize a reset again.
type PasswordReset struct {
	ID int64 `json:"-"`

	// Email identifies the account the reset was requested for.
	Email string `json:"email"`

	// OTPHash is the bcrypt hash of the emailed one-time code.
	// The plain code exists only in the outbound notification.
	OTPHash string `json:"-"`

	// ExpiresAt is the moment after which the code is rejected.
	ExpiresAt time.Time `json:"expires_at"`

	// Consumed is set the first time the code successfully authorizes a
	// password change.
	Consumed bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the reset can still authorize a password change
// at the given instant.
func (p PasswordReset) Active(now time.Time) bool {
	return !p.Consumed && now.Before(p.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}
