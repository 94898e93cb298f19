package models

// Portfolio is the aggregated public view of one user's published sections,
// assembled for unauthenticated visitors looking a portfolio up by username.
type Portfolio struct {
	Profile      PublicProfile `json:"profile"`
	About        *About        `json:"about,omitempty"`
	Skills       []*Skill      `json:"skills"`
	Experiences  []*Experience `json:"experiences"`
	Projects     []*Project    `json:"projects"`
	Certificates []*Certificate `json:"certificates"`
}
