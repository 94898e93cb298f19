package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ContactMessage is a message a visitor leaves for a portfolio owner.
//
// The owner field designates the recipient, not the author: creation is a
// public operation addressed to a username, while listing and deletion are
// owner-scoped like any other resource.
type ContactMessage struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *ContactMessage) RecordID() int64   { return m.ID }
func (m *ContactMessage) OwnerID() int64    { return m.UserID }
func (m *ContactMessage) SetOwner(id int64) { m.UserID = id }

// Validate normalizes the message and checks that the sender left a name,
// a parseable return address, and a non-empty message body.
func (m *ContactMessage) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" {
		return fmt.Errorf("%w: contact name is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: contact email %q is invalid", ErrValidation, m.Email)
	}
	if m.Message == "" {
		return fmt.Errorf("%w: contact message is required", ErrValidation)
	}

	return nil
}

// TableName returns the name of the database table
// associated with the ContactMessage model.
func (m ContactMessage) TableName() string {
	return "contact_messages"
}
