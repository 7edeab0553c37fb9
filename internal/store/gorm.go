package store

import (
	"context"
	"errors"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the Postgres-backed Store. It relies on database-side
// atomicity: unique indexes for slug claims and single-statement
// `SET x = x + 1` updates for counters.
type GormStore struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// translate maps driver errors onto the store sentinels. Requires the
// connection to be opened with gorm.Config{TranslateError: true} so unique
// violations surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	default:
		return err
	}
}

func (s *GormStore) CreateOrganization(ctx context.Context, org *models.Organization) error {
	return translate(s.db.WithContext(ctx).Create(org).Error)
}

func (s *GormStore) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	return translate(s.db.WithContext(ctx).Create(c).Error)
}

func (s *GormStore) CandidateByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	var c models.Candidate
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormStore) CreateJob(ctx context.Context, job *models.Job) error {
	return translate(s.db.WithContext(ctx).Create(job).Error)
}

func (s *GormStore) JobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB { return db.Order("stage_order ASC") }).
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *GormStore) JobBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB { return db.Order("stage_order ASC") }).
		First(&job, "public_slug = ?", slug).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *GormStore) JobsByOrg(ctx context.Context, orgID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, translate(err)
}

func (s *GormStore) UpdateJobStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClaimSlug assigns slug to the job in one guarded UPDATE. The unique index
// on public_slug rejects a slug held by any other job; the IS NULL guard
// keeps an already-allocated slug from being overwritten.
func (s *GormStore) ClaimSlug(ctx context.Context, jobID uuid.UUID, slug string) error {
	res := s.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND public_slug IS NULL", jobID).
		Update("public_slug", slug)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the job is gone or a racing publish already claimed a slug
		// for it. Re-read to tell the two apart.
		job, err := s.JobByID(ctx, jobID)
		if err != nil {
			return err
		}
		if job.PublicSlug != nil {
			return nil
		}
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SetJobVisibility(ctx context.Context, jobID uuid.UUID, public bool) error {
	res := s.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", jobID).Update("is_public", public)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) IncrementViewCount(ctx context.Context, jobID uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementShareCount bumps both the total and the per-platform JSONB tally
// in a single statement, so concurrent shares never lose updates.
func (s *GormStore) IncrementShareCount(ctx context.Context, jobID uuid.UUID, platform string) error {
	res := s.db.WithContext(ctx).Exec(`
		UPDATE jobs
		SET share_count = share_count + 1,
		    shares_by_platform = jsonb_set(
		        COALESCE(shares_by_platform, '{}'::jsonb),
		        ARRAY[?],
		        (COALESCE(shares_by_platform ->> ?, '0')::bigint + 1)::text::jsonb
		    )
		WHERE id = ? AND deleted_at IS NULL`,
		platform, platform, jobID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) StagesByJob(ctx context.Context, jobID uuid.UUID) ([]models.JobStage, error) {
	var stages []models.JobStage
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("stage_order ASC").
		Find(&stages).Error
	return stages, translate(err)
}

func (s *GormStore) StageByID(ctx context.Context, id uuid.UUID) (*models.JobStage, error) {
	var stage models.JobStage
	if err := s.db.WithContext(ctx).First(&stage, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &stage, nil
}

func (s *GormStore) CreateApplication(ctx context.Context, app *models.Application) error {
	return translate(s.db.WithContext(ctx).Create(app).Error)
}

func (s *GormStore) ApplicationByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (s *GormStore) ApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Preload("Candidate").
		Where("job_id = ?", jobID).
		Order("applied_at ASC").
		Find(&apps).Error
	return apps, translate(err)
}

func (s *GormStore) SetApplicationStage(ctx context.Context, appID uuid.UUID, stageID uuid.UUID) (*models.Application, error) {
	res := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", appID).
		Update("current_stage_id", stageID)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.ApplicationByID(ctx, appID)
}

func (s *GormStore) AppendStageChange(ctx context.Context, ev *models.StageChangeEvent) error {
	return translate(s.db.WithContext(ctx).Create(ev).Error)
}
