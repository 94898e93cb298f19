package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Project is a single entry of the portfolio's projects section.
//
// A project illustration can be provided either as an external URL
// (ImageURL) or as an uploaded file stored in the blob store (ImageKey).
// At most one of the two is expected to be set.
type Project struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Link points at the project itself (repository, live demo, ...).
	// Must be an absolute URL.
	Link string `json:"link"`

	// ImageURL is an externally hosted illustration. Optional.
	ImageURL string `json:"image_url,omitempty"`

	// ImageKey references an uploaded illustration in the blob store.
	// Optional.
	ImageKey string `json:"image_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Project) RecordID() int64   { return p.ID }
func (p *Project) OwnerID() int64    { return p.UserID }
func (p *Project) SetOwner(id int64) { p.UserID = id }

// Validate normalizes the project and checks required fields. Link must
// parse as an absolute URL; ImageURL, when present, must as well.
func (p *Project) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Link = strings.TrimSpace(p.Link)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	if p.Title == "" {
		return fmt.Errorf("%w: project title is required", ErrValidation)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: project description is required", ErrValidation)
	}

	if err := validateAbsoluteURL(p.Link); err != nil {
		return fmt.Errorf("%w: project link: %v", ErrValidation, err)
	}
	if p.ImageURL != "" {
		if err := validateAbsoluteURL(p.ImageURL); err != nil {
			return fmt.Errorf("%w: project image url: %v", ErrValidation, err)
		}
	}

	return nil
}

func validateAbsoluteURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%q is not an absolute url", raw)
	}
	return nil
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
