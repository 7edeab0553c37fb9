package dtos

import "github.com/google/uuid"

// ProfileExtractionRequest carries raw HTML scraped by the browser
// extension from a third-party profile page.
type ProfileExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

type CandidateCreationRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" binding:"required"`
	FullName       string    `json:"full_name" binding:"required"`

	// Optional Fields
	Email      string   `json:"email"`
	Headline   string   `json:"headline"`
	Location   string   `json:"location"`
	ProfileURL string   `json:"profile_url"`
	Skills     []string `json:"skills"`
}
