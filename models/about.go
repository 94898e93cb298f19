package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// About is the free-form "about me" section of a portfolio. Exactly one
// About document exists per owner (unique index on user_id); writes are
// upserts at the service layer.
//
// Data is kept opaque (a raw JSON object) so the presentation layer can
// evolve its section layout without server-side schema changes.
type About struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a *About) RecordID() int64   { return a.ID }
func (a *About) OwnerID() int64    { return a.UserID }
func (a *About) SetOwner(id int64) { a.UserID = id }

// Validate checks that Data is a non-empty JSON object.
func (a *About) Validate() error {
	trimmed := bytes.TrimSpace(a.Data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: about data is required", ErrValidation)
	}
	if !json.Valid(trimmed) || trimmed[0] != '{' {
		return fmt.Errorf("%w: about data must be a JSON object", ErrValidation)
	}

	a.Data = trimmed
	return nil
}

// TableName returns the name of the database table
// associated with the About model.
func (a About) TableName() string {
	return "abouts"
}
