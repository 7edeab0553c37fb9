package store

import (
	"context"
	"sort"
	"sync"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemStore is a mutex-guarded in-memory Store. It backs the test suite and
// local development without a Postgres instance, honoring the same atomicity
// contracts as GormStore (slug claims and counter increments happen under
// one lock acquisition).
type MemStore struct {
	mu sync.Mutex

	orgs         map[uuid.UUID]models.Organization
	candidates   map[uuid.UUID]models.Candidate
	jobs         map[uuid.UUID]models.Job
	stages       map[uuid.UUID]models.JobStage
	applications map[uuid.UUID]models.Application
	slugs        map[string]uuid.UUID
	events       []models.StageChangeEvent
	nextEventID  uint
}

func NewMem() *MemStore {
	return &MemStore{
		orgs:         make(map[uuid.UUID]models.Organization),
		candidates:   make(map[uuid.UUID]models.Candidate),
		jobs:         make(map[uuid.UUID]models.Job),
		stages:       make(map[uuid.UUID]models.JobStage),
		applications: make(map[uuid.UUID]models.Application),
		slugs:        make(map[string]uuid.UUID),
		nextEventID:  1,
	}
}

func (s *MemStore) CreateOrganization(_ context.Context, org *models.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orgs {
		if existing.Name == org.Name {
			return ErrConflict
		}
	}
	s.orgs[org.ID] = *org
	return nil
}

func (s *MemStore) CreateCandidate(_ context.Context, c *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[c.ID] = *c
	return nil
}

func (s *MemStore) CandidateByID(_ context.Context, id uuid.UUID) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) CreateJob(_ context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.PublicSlug != nil {
		if _, taken := s.slugs[*job.PublicSlug]; taken {
			return ErrSlugTaken
		}
		s.slugs[*job.PublicSlug] = job.ID
	}
	for _, st := range job.Stages {
		s.stages[st.ID] = st
	}
	stored := *job
	stored.Stages = nil
	s.jobs[job.ID] = stored
	return nil
}

// jobSnapshot assembles a detached copy with its stages ordered. Callers
// hold s.mu.
func (s *MemStore) jobSnapshot(job models.Job) *models.Job {
	out := job
	out.Stages = nil
	for _, st := range s.stages {
		if st.JobID == job.ID {
			out.Stages = append(out.Stages, st)
		}
	}
	sort.Slice(out.Stages, func(i, j int) bool {
		return out.Stages[i].StageOrder < out.Stages[j].StageOrder
	})
	if job.SharesByPlatform != nil {
		out.SharesByPlatform = datatypes.JSONMap{}
		for k, v := range job.SharesByPlatform {
			out.SharesByPlatform[k] = v
		}
	}
	return &out
}

func (s *MemStore) JobByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.jobSnapshot(job), nil
}

func (s *MemStore) JobBySlug(_ context.Context, slug string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.slugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.jobSnapshot(job), nil
}

func (s *MemStore) JobsByOrg(_ context.Context, orgID uuid.UUID) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var jobs []models.Job
	for _, job := range s.jobs {
		if job.OrganizationID == orgID {
			jobs = append(jobs, *s.jobSnapshot(job))
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (s *MemStore) UpdateJobStatus(_ context.Context, id uuid.UUID, status models.JobStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = status
	s.jobs[id] = job
	return nil
}

func (s *MemStore) ClaimSlug(_ context.Context, jobID uuid.UUID, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	if job.PublicSlug != nil {
		return nil
	}
	if holder, taken := s.slugs[slug]; taken && holder != jobID {
		return ErrSlugTaken
	}
	s.slugs[slug] = jobID
	claimed := slug
	job.PublicSlug = &claimed
	s.jobs[jobID] = job
	return nil
}

func (s *MemStore) SetJobVisibility(_ context.Context, jobID uuid.UUID, public bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.IsPublic = public
	s.jobs[jobID] = job
	return nil
}

func (s *MemStore) IncrementViewCount(_ context.Context, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.ViewCount++
	s.jobs[jobID] = job
	return nil
}

func (s *MemStore) IncrementShareCount(_ context.Context, jobID uuid.UUID, platform string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.ShareCount++
	tally := datatypes.JSONMap{}
	for k, v := range job.SharesByPlatform {
		tally[k] = v
	}
	switch n := tally[platform].(type) {
	case int64:
		tally[platform] = n + 1
	case float64:
		tally[platform] = int64(n) + 1
	default:
		tally[platform] = int64(1)
	}
	job.SharesByPlatform = tally
	s.jobs[jobID] = job
	return nil
}

func (s *MemStore) StagesByJob(_ context.Context, jobID uuid.UUID) ([]models.JobStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stages []models.JobStage
	for _, st := range s.stages {
		if st.JobID == jobID {
			stages = append(stages, st)
		}
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i].StageOrder < stages[j].StageOrder })
	return stages, nil
}

func (s *MemStore) StageByID(_ context.Context, id uuid.UUID) (*models.JobStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &st, nil
}

func (s *MemStore) CreateApplication(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[app.ID] = *app
	return nil
}

func (s *MemStore) ApplicationByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (s *MemStore) ApplicationsByJob(_ context.Context, jobID uuid.UUID) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var apps []models.Application
	for _, app := range s.applications {
		if app.JobID == jobID {
			if c, ok := s.candidates[app.CandidateID]; ok {
				app.Candidate = c
			}
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].AppliedAt.Before(apps[j].AppliedAt) })
	return apps, nil
}

func (s *MemStore) SetApplicationStage(_ context.Context, appID uuid.UUID, stageID uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[appID]
	if !ok {
		return nil, ErrNotFound
	}
	target := stageID
	app.CurrentStageID = &target
	s.applications[appID] = app
	return &app, nil
}

func (s *MemStore) AppendStageChange(_ context.Context, ev *models.StageChangeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev.ID = s.nextEventID
	s.nextEventID++
	s.events = append(s.events, *ev)
	return nil
}

// StageChanges returns a copy of the recorded event log, oldest first.
// Test helper; GormStore consumers query the table directly.
func (s *MemStore) StageChanges() []models.StageChangeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StageChangeEvent, len(s.events))
	copy(out, s.events)
	return out
}

// DeleteStage removes a stage row, leaving any applications that reference
// it dangling. Mirrors an out-of-band configuration edit; used to exercise
// the "unassigned" grouping path.
func (s *MemStore) DeleteStage(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stages, id)
}
