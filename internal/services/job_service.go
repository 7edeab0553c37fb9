package services

import (
	"context"
	"errors"
	"time"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/apperr"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"github.com/google/uuid"
)

// JobService covers the recruiter-side CRUD around jobs and applications.
// Publishing, counters and stage moves belong to the listing gateway and
// the pipeline engine, never here.
type JobService struct {
	Store store.Store
}

func NewJobService(st store.Store) *JobService {
	return &JobService{Store: st}
}

func parseJobStatus(raw string) (models.JobStatus, error) {
	if raw == "" {
		return models.JobStatusDraft, nil
	}
	switch s := models.JobStatus(raw); s {
	case models.JobStatusDraft, models.JobStatusOpen, models.JobStatusClosed,
		models.JobStatusOnHold, models.JobStatusCancelled:
		return s, nil
	}
	return "", apperr.Newf(apperr.KindInvalidState, "unknown job status %q", raw)
}

// validateStages enforces the stage configuration rules: strictly
// increasing order values (ties forbidden) and at most one system entry
// stage. Inputs are expected pre-sorted by the dashboard; out-of-order
// input is rejected rather than silently re-sorted.
func validateStages(stages []dtos.StageInput) error {
	systemSeen := false
	for i, st := range stages {
		if i > 0 && st.StageOrder <= stages[i-1].StageOrder {
			return apperr.Newf(apperr.KindInvalidState,
				"stage %q: order %d must be greater than the previous stage's %d",
				st.Name, st.StageOrder, stages[i-1].StageOrder)
		}
		if st.IsSystem {
			if systemSeen {
				return apperr.New(apperr.KindInvalidState, "at most one system stage is allowed")
			}
			systemSeen = true
		}
	}
	return nil
}

func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	status, err := parseJobStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := validateStages(req.Stages); err != nil {
		return nil, err
	}

	job := &models.Job{
		ID:               uuid.New(),
		OrganizationID:   req.OrganizationID,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Status:           status,
		SalaryRange:      req.SalaryRange,
		ShowSalaryPublic: req.ShowSalaryPublic,
	}
	for _, st := range req.Stages {
		job.Stages = append(job.Stages, models.JobStage{
			ID:         uuid.New(),
			JobID:      job.ID,
			Name:       st.Name,
			StageOrder: st.StageOrder,
			IsSystem:   st.IsSystem,
		})
	}

	if err := s.Store.CreateJob(ctx, job); err != nil {
		return nil, translateStoreErr(err, "job")
	}
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.Store.JobByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err, "job")
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, orgID uuid.UUID) ([]models.Job, error) {
	jobs, err := s.Store.JobsByOrg(ctx, orgID)
	if err != nil {
		return nil, translateStoreErr(err, "jobs")
	}
	return jobs, nil
}

func (s *JobService) UpdateJobStatus(ctx context.Context, id uuid.UUID, raw string) (*models.Job, error) {
	status, err := parseJobStatus(raw)
	if err != nil {
		return nil, err
	}
	if err := s.Store.UpdateJobStatus(ctx, id, status); err != nil {
		return nil, translateStoreErr(err, "job")
	}
	return s.Store.JobByID(ctx, id)
}

// CreateApplication registers a candidate on a job. The application starts
// outside the pipeline (no current stage) with status active.
func (s *JobService) CreateApplication(ctx context.Context, jobID uuid.UUID, req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	if _, err := s.Store.JobByID(ctx, jobID); err != nil {
		return nil, translateStoreErr(err, "job")
	}
	if _, err := s.Store.CandidateByID(ctx, req.CandidateID); err != nil {
		return nil, translateStoreErr(err, "candidate")
	}

	app := &models.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: req.CandidateID,
		Status:      models.ApplicationActive,
		AppliedAt:   time.Now().UTC(),
	}
	if err := s.Store.CreateApplication(ctx, app); err != nil {
		return nil, translateStoreErr(err, "application")
	}
	return app, nil
}

func (s *JobService) ApplicationsForJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	if _, err := s.Store.JobByID(ctx, jobID); err != nil {
		return nil, translateStoreErr(err, "job")
	}
	apps, err := s.Store.ApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, translateStoreErr(err, "applications")
	}
	return apps, nil
}

func translateStoreErr(err error, entity string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperr.NotFound(entity)
	case errors.Is(err, store.ErrConflict):
		return apperr.Wrap(apperr.KindConflict, entity, err)
	case errors.Is(err, store.ErrTimeout):
		return apperr.Wrap(apperr.KindTimeout, entity, err)
	default:
		return err
	}
}
