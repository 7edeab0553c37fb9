package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/apperr"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedJob creates a job with the given ordered stage names and returns the
// job plus its stages.
func seedJob(t *testing.T, st *store.MemStore, title string, stageNames ...string) (*models.Job, []models.JobStage) {
	t.Helper()
	job := &models.Job{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Title:          title,
		Status:         models.JobStatusOpen,
		CreatedAt:      time.Now(),
	}
	for i, name := range stageNames {
		job.Stages = append(job.Stages, models.JobStage{
			ID:         uuid.New(),
			JobID:      job.ID,
			Name:       name,
			StageOrder: i,
		})
	}
	require.NoError(t, st.CreateJob(context.Background(), job))
	return job, job.Stages
}

func seedApplication(t *testing.T, st *store.MemStore, jobID uuid.UUID) *models.Application {
	t.Helper()
	app := &models.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: uuid.New(),
		Status:      models.ApplicationActive,
		AppliedAt:   time.Now(),
	}
	require.NoError(t, st.CreateApplication(context.Background(), app))
	return app
}

func TestMoveApplicationToStage(t *testing.T) {
	ctx := context.Background()
	st := store.NewMem()
	engine := NewEngine(st)

	job, stages := seedJob(t, st, "Backend Engineer", "Applied", "Interview", "Offer")
	app := seedApplication(t, st, job.ID)

	updated, err := engine.MoveApplicationToStage(ctx, app.ID, stages[1].ID)
	require.NoError(t, err)
	require.NotNil(t, updated.CurrentStageID)
	assert.Equal(t, stages[1].ID, *updated.CurrentStageID)

	// Backward transitions are allowed: the engine is a label-setter.
	updated, err = engine.MoveApplicationToStage(ctx, app.ID, stages[0].ID)
	require.NoError(t, err)
	assert.Equal(t, stages[0].ID, *updated.CurrentStageID)

	// Re-entering the current stage is also fine.
	updated, err = engine.MoveApplicationToStage(ctx, app.ID, stages[0].ID)
	require.NoError(t, err)
	assert.Equal(t, stages[0].ID, *updated.CurrentStageID)
}

func TestMoveApplicationUnknownApplication(t *testing.T) {
	st := store.NewMem()
	engine := NewEngine(st)
	_, stages := seedJob(t, st, "Backend Engineer", "Applied")

	_, err := engine.MoveApplicationToStage(context.Background(), uuid.New(), stages[0].ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestMoveApplicationUnknownStage(t *testing.T) {
	st := store.NewMem()
	engine := NewEngine(st)
	job, _ := seedJob(t, st, "Backend Engineer", "Applied")
	app := seedApplication(t, st, job.ID)

	_, err := engine.MoveApplicationToStage(context.Background(), app.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidStage, apperr.KindOf(err))
}

func TestMoveApplicationStageFromDifferentJob(t *testing.T) {
	ctx := context.Background()
	st := store.NewMem()
	engine := NewEngine(st)

	jobA, stagesA := seedJob(t, st, "Backend Engineer", "Applied", "Interview")
	_, stagesB := seedJob(t, st, "Frontend Engineer", "Applied", "Interview")
	app := seedApplication(t, st, jobA.ID)

	_, err := engine.MoveApplicationToStage(ctx, app.ID, stagesA[0].ID)
	require.NoError(t, err)

	_, err = engine.MoveApplicationToStage(ctx, app.ID, stagesB[1].ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidStage, apperr.KindOf(err))

	// The failed move must leave current_stage untouched.
	reloaded, err := st.ApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CurrentStageID)
	assert.Equal(t, stagesA[0].ID, *reloaded.CurrentStageID)
}

func TestMoveApplicationRecordsAuditEvent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMem()
	engine := NewEngine(st)

	job, stages := seedJob(t, st, "Backend Engineer", "Applied", "Interview")
	app := seedApplication(t, st, job.ID)

	_, err := engine.MoveApplicationToStage(ctx, app.ID, stages[0].ID)
	require.NoError(t, err)
	_, err = engine.MoveApplicationToStage(ctx, app.ID, stages[1].ID)
	require.NoError(t, err)

	events := st.StageChanges()
	require.Len(t, events, 2)
	assert.Nil(t, events[0].FromStageID)
	assert.Equal(t, stages[0].ID, events[0].ToStageID)
	require.NotNil(t, events[1].FromStageID)
	assert.Equal(t, stages[0].ID, *events[1].FromStageID)
	assert.Equal(t, stages[1].ID, events[1].ToStageID)

	// The change feed saw the same moves.
	ev := <-engine.Events()
	assert.Equal(t, app.ID, ev.ApplicationID)
}

func TestConcurrentMovesSerializeToOneTarget(t *testing.T) {
	ctx := context.Background()
	st := store.NewMem()
	engine := NewEngine(st)

	job, stages := seedJob(t, st, "Backend Engineer", "Applied", "Interview", "Offer")
	app := seedApplication(t, st, job.ID)

	const rounds = 50
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := engine.MoveApplicationToStage(ctx, app.ID, stages[1].ID)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := engine.MoveApplicationToStage(ctx, app.ID, stages[2].ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Last-committed-wins: the result must be exactly one of the two
	// requested stages, never a merged third value.
	reloaded, err := st.ApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CurrentStageID)
	assert.Contains(t, []uuid.UUID{stages[1].ID, stages[2].ID}, *reloaded.CurrentStageID)
}

func TestListStagesForJob(t *testing.T) {
	ctx := context.Background()
	st := store.NewMem()
	engine := NewEngine(st)

	job, _ := seedJob(t, st, "Backend Engineer", "Applied", "Interview", "Offer")

	stages, err := engine.ListStagesForJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, "Applied", stages[0].Name)
	assert.Equal(t, "Interview", stages[1].Name)
	assert.Equal(t, "Offer", stages[2].Name)

	_, err = engine.ListStagesForJob(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
