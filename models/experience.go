package models

import (
	"fmt"
	"strings"
	"time"
)

// ExperienceIcon selects the pictogram rendered next to an experience entry.
type ExperienceIcon string

// Allowed experience icons.
const (
	IconBriefcase  ExperienceIcon = "briefcase"
	IconCode       ExperienceIcon = "code"
	IconGraduation ExperienceIcon = "graduation"
)

var validExperienceIcons = map[ExperienceIcon]bool{
	IconBriefcase:  true,
	IconCode:       true,
	IconGraduation: true,
}

// Experience is a single entry of the portfolio's experience timeline.
// All content fields are required.
type Experience struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	IconType    ExperienceIcon `json:"icon_type"`
	Date        string         `json:"date"`
	Title       string         `json:"title"`
	Company     string         `json:"company"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (e *Experience) RecordID() int64   { return e.ID }
func (e *Experience) OwnerID() int64    { return e.UserID }
func (e *Experience) SetOwner(id int64) { e.UserID = id }

// Validate normalizes the entry and checks that every content field is
// present and that the icon is one of the allowed values.
func (e *Experience) Validate() error {
	e.Date = strings.TrimSpace(e.Date)
	e.Title = strings.TrimSpace(e.Title)
	e.Company = strings.TrimSpace(e.Company)
	e.Description = strings.TrimSpace(e.Description)

	if !validExperienceIcons[e.IconType] {
		return fmt.Errorf("%w: unknown experience icon %q", ErrValidation, e.IconType)
	}

	if e.Date == "" {
		return fmt.Errorf("%w: experience date is required", ErrValidation)
	}
	if e.Title == "" {
		return fmt.Errorf("%w: experience title is required", ErrValidation)
	}
	if e.Company == "" {
		return fmt.Errorf("%w: experience company is required", ErrValidation)
	}
	if e.Description == "" {
		return fmt.Errorf("%w: experience description is required", ErrValidation)
	}

	return nil
}

// TableName returns the name of the database table
// associated with the Experience model.
func (e Experience) TableName() string {
	return "experiences"
}
