package dtos

import (
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/google/uuid"
)

type StageInput struct {
	Name       string `json:"name" binding:"required"`
	StageOrder int    `json:"stage_order"`
	IsSystem   bool   `json:"is_system"`
}

type JobCreationRequest struct {
	OrganizationID uuid.UUID    `json:"organization_id" binding:"required"`
	Title          string       `json:"title" binding:"required"`
	Description    string       `json:"description"`
	Location       string       `json:"location"`
	Status         string       `json:"status"` // Defaults to "draft" if empty
	Stages         []StageInput `json:"stages"`

	// Optional Fields
	SalaryRange      string `json:"salary_range"`
	ShowSalaryPublic bool   `json:"show_salary_public"`
}

type JobStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type StageMoveRequest struct {
	StageID uuid.UUID `json:"stage_id" binding:"required"`
}

type ApplicationCreationRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
}

type ShareRequest struct {
	Platform string `json:"platform" binding:"required"`
}

// PublicJobResponse is the unauthenticated projection of a job. Internal
// fields (org, status, counters' write side) stay out; salary appears only
// when the recruiter opted in.
type PublicJobResponse struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range,omitempty"`
}

func NewPublicJobResponse(job *models.Job) *PublicJobResponse {
	resp := &PublicJobResponse{
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
	}
	if job.PublicSlug != nil {
		resp.Slug = *job.PublicSlug
	}
	if job.ShowSalaryPublic {
		resp.SalaryRange = job.SalaryRange
	}
	return resp
}
