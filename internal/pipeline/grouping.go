package pipeline

import "github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"

// UnassignedBucket is the reserved grouping key for applications with no
// current stage, or whose stage was later removed from the job's
// configuration. Historical data drifts; the grouping tolerates it.
const UnassignedBucket = "unassigned"

type StageBucket struct {
	Key          string               `json:"key"`
	Applications []models.Application `json:"applications"`
}

// GroupByStage buckets applications by their current stage id. Buckets are
// created lazily in encounter order and the declared stage list is never
// assumed exhaustive: an application may reference a stage the job no longer
// declares, and still lands in its own bucket rather than erroring.
func GroupByStage(apps []models.Application) []StageBucket {
	index := make(map[string]int)
	var buckets []StageBucket
	for _, app := range apps {
		key := UnassignedBucket
		if app.CurrentStageID != nil {
			key = app.CurrentStageID.String()
		}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, StageBucket{Key: key})
		}
		buckets[i].Applications = append(buckets[i].Applications, app)
	}
	return buckets
}
