package pipeline

import (
	"testing"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appInStage(stageID *uuid.UUID) models.Application {
	return models.Application{
		ID:             uuid.New(),
		JobID:          uuid.New(),
		CandidateID:    uuid.New(),
		CurrentStageID: stageID,
	}
}

func TestGroupByStageLazyBuckets(t *testing.T) {
	screening := uuid.New()
	interview := uuid.New()

	apps := []models.Application{
		appInStage(&screening),
		appInStage(nil),
		appInStage(&interview),
		appInStage(&screening),
	}

	buckets := GroupByStage(apps)
	require.Len(t, buckets, 3)

	// Buckets appear in encounter order, not declared stage order.
	assert.Equal(t, screening.String(), buckets[0].Key)
	assert.Equal(t, UnassignedBucket, buckets[1].Key)
	assert.Equal(t, interview.String(), buckets[2].Key)

	assert.Len(t, buckets[0].Applications, 2)
	assert.Len(t, buckets[1].Applications, 1)
	assert.Len(t, buckets[2].Applications, 1)
}

func TestGroupByStageToleratesDanglingStage(t *testing.T) {
	// An application may reference a stage the job no longer declares;
	// grouping must bucket it rather than fail.
	ghost := uuid.New()
	buckets := GroupByStage([]models.Application{appInStage(&ghost)})
	require.Len(t, buckets, 1)
	assert.Equal(t, ghost.String(), buckets[0].Key)
}

func TestGroupByStageEmpty(t *testing.T) {
	assert.Empty(t, GroupByStage(nil))
}
