package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Certificate is a single entry of the portfolio's certificates section.
// Unlike the other resources it is always backed by a binary document
// (PDF or image) stored in the blob store under FileKey.
//
// The blob must never outlive its referencing certificate record: deletion
// cascades into the blob store, and creation follows a blob-first saga so
// that a failed record insert cleans up the freshly written object.
type Certificate struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`

	// FileKey references the certificate document in the blob store.
	FileKey string `json:"file_key"`

	// Filename is the original upload name, kept for download headers.
	Filename string `json:"filename"`

	// ContentType is the MIME type recorded at upload time.
	ContentType string `json:"content_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Certificate) RecordID() int64   { return c.ID }
func (c *Certificate) OwnerID() int64    { return c.UserID }
func (c *Certificate) SetOwner(id int64) { c.UserID = id }

// Validate normalizes the certificate and checks required fields.
// FileKey is stamped by the certificate service after the blob write, so it
// is required here as well: a certificate without a document is invalid.
func (c *Certificate) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Issuer = strings.TrimSpace(c.Issuer)
	c.Date = strings.TrimSpace(c.Date)

	if c.Title == "" {
		return fmt.Errorf("%w: certificate title is required", ErrValidation)
	}
	if c.Issuer == "" {
		return fmt.Errorf("%w: certificate issuer is required", ErrValidation)
	}
	if c.Date == "" {
		return fmt.Errorf("%w: certificate date is required", ErrValidation)
	}
	if c.FileKey == "" {
		return fmt.Errorf("%w: certificate file is required", ErrValidation)
	}

	return nil
}

// URL returns the public path under which the certificate document is
// streamed by the HTTP layer.
func (c Certificate) URL() string {
	return "/api/certificates/file/" + c.FileKey
}

// MarshalJSON includes the derived document URL alongside the persisted
// fields so API consumers never have to assemble the path themselves.
func (c Certificate) MarshalJSON() ([]byte, error) {
	type alias Certificate
	return json.Marshal(struct {
		alias
		URL string `json:"url"`
	}{alias(c), c.URL()})
}

// TableName returns the name of the database table
// associated with the Certificate model.
func (c Certificate) TableName() string {
	return "certificates"
}
