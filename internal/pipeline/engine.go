// Package pipeline owns the movement of applications through a job's
// hiring stages. The engine is a label-setter, not a sequencer: any stage of
// the owning job can be targeted at any time, including backward moves and
// re-entering the current stage. Every transition is caller-specified;
// nothing advances automatically.
package pipeline

import (
	"context"
	"errors"
	"log"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/apperr"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"github.com/google/uuid"
)

type Engine struct {
	store  store.Store
	events chan models.StageChangeEvent
}

func NewEngine(st store.Store) *Engine {
	return &Engine{
		store: st,
		// Buffered so a slow (or absent) consumer never blocks a transition.
		events: make(chan models.StageChangeEvent, 64),
	}
}

// Events exposes the change feed consumed by notification/analytics
// listeners. Events are best-effort: dropped when the buffer is full.
func (e *Engine) Events() <-chan models.StageChangeEvent {
	return e.events
}

// MoveApplicationToStage validates and applies one transition. Validation is
// fail-fast: a missing application wins over a bad stage. Two racing moves
// for the same application serialize at the store as last-committed-wins.
func (e *Engine) MoveApplicationToStage(ctx context.Context, applicationID, targetStageID uuid.UUID) (*models.Application, error) {
	app, err := e.store.ApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("application")
		}
		return nil, storeErr("load application", err)
	}

	stage, err := e.store.StageByID(ctx, targetStageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.New(apperr.KindInvalidStage, "stage does not exist")
		}
		return nil, storeErr("load stage", err)
	}
	if stage.JobID != app.JobID {
		return nil, apperr.New(apperr.KindInvalidStage, "stage belongs to a different job")
	}

	previous := app.CurrentStageID
	updated, err := e.store.SetApplicationStage(ctx, applicationID, targetStageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("application")
		}
		return nil, storeErr("apply transition", err)
	}

	ev := models.StageChangeEvent{
		ApplicationID: updated.ID,
		JobID:         updated.JobID,
		FromStageID:   previous,
		ToStageID:     targetStageID,
	}
	// Audit trail is best-effort: a failed append never fails the move.
	if err := e.store.AppendStageChange(ctx, &ev); err != nil {
		log.Printf("⚠️ stage change audit append failed for application %s: %v", updated.ID, err)
	}
	select {
	case e.events <- ev:
	default:
	}

	return updated, nil
}

// ListStagesForJob returns the job's stages ordered by stage_order ascending.
func (e *Engine) ListStagesForJob(ctx context.Context, jobID uuid.UUID) ([]models.JobStage, error) {
	if _, err := e.store.JobByID(ctx, jobID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, storeErr("load job", err)
	}
	stages, err := e.store.StagesByJob(ctx, jobID)
	if err != nil {
		return nil, storeErr("load stages", err)
	}
	return stages, nil
}

func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrTimeout):
		return apperr.Wrap(apperr.KindTimeout, op, err)
	case errors.Is(err, store.ErrConflict):
		return apperr.Wrap(apperr.KindConflict, op, err)
	default:
		return err
	}
}
