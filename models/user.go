package models

import "time"

// User represents a portfolio owner's account. It carries identity
// attributes and credential data. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique public handle of the portfolio. It is stored
	// lowercase and looked up case-insensitively.
	Username string `json:"username"`

	// Email is the unique address used for authentication and contact
	// notifications.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// FullName is the display name shown on the public portfolio.
	FullName string `json:"fullname"`

	// Bio is a free-form description shown in the hero/profile section.
	Bio string `json:"bio,omitempty"`

	// ImageKey references the avatar object in the blob store. Empty when
	// no avatar has been uploaded.
	ImageKey string `json:"image_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicProfile is the subset of User safe to expose to unauthenticated
// visitors looking up a portfolio by username.
type PublicProfile struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Bio      string `json:"bio,omitempty"`
	ImageKey string `json:"image_key,omitempty"`
}

// Public projects the user onto its visitor-facing representation.
func (u User) Public() PublicProfile {
	return PublicProfile{
		UserID:   u.UserID,
		Username: u.Username,
		FullName: u.FullName,
		Bio:      u.Bio,
		ImageKey: u.ImageKey,
	}
}
