// Package listing owns the public side of a job: the publish/unpublish
// visibility lifecycle, durable shareable slugs, and the view/share counters
// behind the unauthenticated job page. Counters live in the store and are
// bumped with store-level atomic increments; nothing is cached in process.
package listing

import (
	"context"
	"errors"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/apperr"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"github.com/google/uuid"
)

// maxSlugAttempts bounds the collision probe: the base slug plus numbered
// variants base-2 .. base-N. Exhaustion is a SlugAllocationFailed, never a
// silent overwrite.
const maxSlugAttempts = 10

type Gateway struct {
	store store.Store
}

func NewGateway(st store.Store) *Gateway {
	return &Gateway{store: st}
}

// Publish makes a job publicly visible. The job must be open; publishing an
// already-public job is a no-op returning current state. The slug is
// allocated on first publish and kept forever after, so previously shared
// links survive unpublish/republish cycles.
func (g *Gateway) Publish(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	job, err := g.store.JobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, storeErr("load job", err)
	}
	if job.IsPublic {
		return job, nil
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperr.New(apperr.KindInvalidState, "job must be open to publish")
	}

	if job.PublicSlug == nil {
		if err := g.allocateSlug(ctx, job); err != nil {
			return nil, err
		}
	}

	if err := g.store.SetJobVisibility(ctx, jobID, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, storeErr("publish job", err)
	}
	return g.store.JobByID(ctx, jobID)
}

// allocateSlug probes slug candidates derived from the title until the
// store's unique insert accepts one. Only naming collisions are retried;
// any other store failure aborts immediately.
func (g *Gateway) allocateSlug(ctx context.Context, job *models.Job) error {
	base := Slugify(job.Title)
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		err := g.store.ClaimSlug(ctx, job.ID, slugCandidate(base, attempt))
		if err == nil {
			return nil
		}
		if errors.Is(err, store.ErrSlugTaken) {
			continue
		}
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("job")
		}
		return storeErr("claim slug", err)
	}
	return apperr.Newf(apperr.KindSlugAllocationFailed, "no free slug for %q after %d attempts", base, maxSlugAttempts)
}

// Unpublish hides the job from the public read path. The slug stays on the
// job: releasing it for another job would hijack links already shared.
func (g *Gateway) Unpublish(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	if err := g.store.SetJobVisibility(ctx, jobID, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, storeErr("unpublish job", err)
	}
	return g.store.JobByID(ctx, jobID)
}

// publicJobBySlug resolves a slug to a job only when the job is currently
// public. A private job with a retained slug reports NotFound, identical to
// an unknown slug, so the public surface never leaks existence.
func (g *Gateway) publicJobBySlug(ctx context.Context, slug string) (*models.Job, error) {
	job, err := g.store.JobBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, storeErr("resolve slug", err)
	}
	if !job.IsPublic {
		return nil, apperr.NotFound("job")
	}
	return job, nil
}

// RecordView counts one page view. Intentionally not idempotent: every call
// is a distinct view event; de-duplicating refreshes is the caller's job.
func (g *Gateway) RecordView(ctx context.Context, slug string) error {
	job, err := g.publicJobBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := g.store.IncrementViewCount(ctx, job.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("job")
		}
		return storeErr("record view", err)
	}
	return nil
}

// RecordShare counts one share event and tallies it under the given
// platform key. Platforms are an open set of strings; new share targets
// need no schema or code change.
func (g *Gateway) RecordShare(ctx context.Context, slug, platform string) error {
	job, err := g.publicJobBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := g.store.IncrementShareCount(ctx, job.ID, platform); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("job")
		}
		return storeErr("record share", err)
	}
	return nil
}

// ResolvePublicJob returns the public-safe projection for an exact slug
// match. Salary is included only when the recruiter opted in.
func (g *Gateway) ResolvePublicJob(ctx context.Context, slug string) (*dtos.PublicJobResponse, error) {
	job, err := g.publicJobBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return dtos.NewPublicJobResponse(job), nil
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
