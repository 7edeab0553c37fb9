// Package store is the narrow persistence boundary consumed by the pipeline
// engine and the public listing gateway. Implementations must provide the
// three primitives the cores rely on: insert-unique-or-fail slug claims,
// store-level atomic counter increments, and an atomic write of an
// application's current stage. Counts are never cached in process memory;
// multiple stateless API instances may run against the same database.
package store

import (
	"context"
	"errors"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrSlugTaken is returned by ClaimSlug when the slug is already held
	// by another job. Callers probe with a different candidate.
	ErrSlugTaken = errors.New("store: slug already taken")
	// ErrConflict is returned when a uniqueness constraint other than the
	// slug rejects a write (e.g. duplicate organization name).
	ErrConflict = errors.New("store: conflict")
	// ErrTimeout is returned when the database did not answer within the
	// context deadline.
	ErrTimeout = errors.New("store: timeout")
)

type Store interface {
	// Organizations / users / candidates
	CreateOrganization(ctx context.Context, org *models.Organization) error
	CreateCandidate(ctx context.Context, c *models.Candidate) error
	CandidateByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)

	// Jobs
	CreateJob(ctx context.Context, job *models.Job) error
	JobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	JobBySlug(ctx context.Context, slug string) (*models.Job, error)
	JobsByOrg(ctx context.Context, orgID uuid.UUID) ([]models.Job, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error

	// Public listing primitives. ClaimSlug atomically assigns slug to the
	// job iff no other job holds it (unique index, insert-or-fail — never
	// check-then-write). The increments are single-statement SET x = x + 1.
	ClaimSlug(ctx context.Context, jobID uuid.UUID, slug string) error
	SetJobVisibility(ctx context.Context, jobID uuid.UUID, public bool) error
	IncrementViewCount(ctx context.Context, jobID uuid.UUID) error
	IncrementShareCount(ctx context.Context, jobID uuid.UUID, platform string) error

	// Stages
	StagesByJob(ctx context.Context, jobID uuid.UUID) ([]models.JobStage, error)
	StageByID(ctx context.Context, id uuid.UUID) (*models.JobStage, error)

	// Applications
	CreateApplication(ctx context.Context, app *models.Application) error
	ApplicationByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	// SetApplicationStage atomically writes current_stage_id; racing writers
	// serialize as last-committed-wins.
	SetApplicationStage(ctx context.Context, appID uuid.UUID, stageID uuid.UUID) (*models.Application, error)
	AppendStageChange(ctx context.Context, ev *models.StageChangeEvent) error
}
