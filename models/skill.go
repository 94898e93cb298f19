package models

import (
	"fmt"
	"strings"
	"time"
)

// SkillLevel is the proficiency attached to a skill entry.
type SkillLevel string

// Allowed proficiency levels. Any other non-empty value is rejected at
// validation time; an empty level defaults to [SkillLevelIntermediate].
const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

var validSkillLevels = map[SkillLevel]bool{
	SkillLevelBeginner:     true,
	SkillLevelIntermediate: true,
	SkillLevelAdvanced:     true,
	SkillLevelExpert:       true,
}

// Skill is a single entry of the portfolio's skills section.
type Skill struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	Level     SkillLevel `json:"level"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s *Skill) RecordID() int64   { return s.ID }
func (s *Skill) OwnerID() int64    { return s.UserID }
func (s *Skill) SetOwner(id int64) { s.UserID = id }

// Validate normalizes the skill and checks required fields.
//
// An empty level defaults to intermediate; a non-empty level outside the
// allowed set is rejected rather than silently coerced.
func (s *Skill) Validate() error {
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		return fmt.Errorf("%w: skill title is required", ErrValidation)
	}

	if s.Level == "" {
		s.Level = SkillLevelIntermediate
		return nil
	}
	if !validSkillLevels[s.Level] {
		return fmt.Errorf("%w: unknown skill level %q", ErrValidation, s.Level)
	}

	return nil
}

// TableName returns the name of the database table
// associated with the Skill model.
func (s Skill) TableName() string {
	return "skills"
}
