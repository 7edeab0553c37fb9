package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobStatus is the recruiter-facing lifecycle of a job posting. It is
// independent of public visibility: a closed job can still carry its slug.
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusOpen      JobStatus = "open"
	JobStatusClosed    JobStatus = "closed"
	JobStatusOnHold    JobStatus = "on_hold"
	JobStatusCancelled JobStatus = "cancelled"
)

// ApplicationStatus tracks the overall outcome of an application. It is
// deliberately decoupled from the pipeline stage: a hired application may
// still be moved between stages.
type ApplicationStatus string

const (
	ApplicationActive    ApplicationStatus = "active"
	ApplicationHired     ApplicationStatus = "hired"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
	ApplicationOnHold    ApplicationStatus = "on_hold"
)

type Organization struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// 'omitempty' prevents infinite loops when fetching an Org -> Jobs -> Org -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrganizationID uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `gorm:"default:'recruiter'" json:"role"`
}

type Candidate struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrganizationID uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`

	FullName   string         `gorm:"not null" json:"full_name"`
	Email      string         `json:"email"`
	Headline   string         `json:"headline"`
	Location   string         `json:"location"`
	ProfileURL string         `json:"profile_url"`
	Skills     datatypes.JSON `json:"skills"`
}

type Job struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Foreign Key
	OrganizationID uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
	// Association: GORM needs Preload() to fill this
	Organization Organization `json:"organization,omitempty"`

	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `json:"location"`
	Status      JobStatus `gorm:"default:'draft'" json:"status"`

	Stages []JobStage `json:"stages,omitempty"`

	// Public listing state. The slug is allocated once and never reassigned;
	// counters only ever go up and survive unpublish/publish cycles.
	IsPublic         bool              `gorm:"default:false" json:"is_public"`
	PublicSlug       *string           `gorm:"uniqueIndex" json:"public_slug,omitempty"`
	ViewCount        int64             `gorm:"default:0" json:"view_count"`
	ShareCount       int64             `gorm:"default:0" json:"share_count"`
	SharesByPlatform datatypes.JSONMap `json:"shares_by_platform"`

	SalaryRange      string `json:"salary_range"`
	ShowSalaryPublic bool   `gorm:"default:false" json:"show_salary_public"`
}

// JobStage is one organization-defined step in a job's hiring workflow,
// scoped to a single job. StageOrder is strictly increasing within a job.
type JobStage struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID      uuid.UUID `gorm:"type:uuid;index;not null" json:"job_id"`
	Name       string    `gorm:"not null" json:"name"`
	StageOrder int       `json:"stage_order"`
	// IsSystem marks the built-in entry stage ("Applied"); at most one per job.
	IsSystem bool `gorm:"default:false" json:"is_system"`
}

type Application struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID       uuid.UUID `gorm:"type:uuid;index;not null" json:"job_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;index;not null" json:"candidate_id"`
	Candidate   Candidate `json:"candidate,omitempty"`

	Status ApplicationStatus `gorm:"default:'active'" json:"status"`

	// CurrentStageID is nil until the application is placed in a stage. The
	// referenced stage may later be removed from the job's configuration;
	// read paths bucket such applications as "unassigned" rather than fail.
	CurrentStageID *uuid.UUID `gorm:"type:uuid" json:"current_stage_id,omitempty"`

	AppliedAt time.Time `json:"applied_at"`
}

// StageChangeEvent is an append-only record of pipeline moves, kept for
// audit and analytics consumers.
type StageChangeEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ApplicationID uuid.UUID  `gorm:"type:uuid;index" json:"application_id"`
	JobID         uuid.UUID  `gorm:"type:uuid;index" json:"job_id"`
	FromStageID   *uuid.UUID `gorm:"type:uuid" json:"from_stage_id,omitempty"`
	ToStageID     uuid.UUID  `gorm:"type:uuid" json:"to_stage_id"`
}
