package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/listing"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/pipeline"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/services"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the API against the in-memory store. The AI parser
// and Gmail notifier need external credentials and stay out of these tests.
func newTestRouter(st *store.MemStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := pipeline.NewEngine(st)
	gateway := listing.NewGateway(st)
	jobHandler := NewJobHandler(services.NewJobService(st), engine, gateway)
	appHandler := NewApplicationHandler(engine)
	publicHandler := NewPublicHandler(gateway)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/health", HealthCheck)
	api.POST("/jobs", jobHandler.CreateJob)
	api.GET("/jobs/:id", jobHandler.GetJob)
	api.GET("/jobs/:id/stages", jobHandler.ListStages)
	api.GET("/jobs/:id/board", jobHandler.Board)
	api.POST("/jobs/:id/publish", jobHandler.Publish)
	api.POST("/jobs/:id/unpublish", jobHandler.Unpublish)
	api.PATCH("/applications/:id/stage", appHandler.MoveStage)

	public := r.Group("/public")
	public.GET("/jobs/:slug", publicHandler.ResolveJob)
	public.POST("/jobs/:slug/view", publicHandler.RecordView)
	public.POST("/jobs/:slug/share", publicHandler.RecordShare)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJobPublishFlowOverHTTP(t *testing.T) {
	st := store.NewMem()
	r := newTestRouter(st)

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
		"organization_id": uuid.New(),
		"title":           "Senior Engineer",
		"status":          "open",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var job models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%s/publish", job.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var published models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	require.NotNil(t, published.PublicSlug)
	assert.Equal(t, "senior-engineer", *published.PublicSlug)

	// Public page resolves, view beacon lands.
	w = doJSON(t, r, http.MethodGet, "/public/jobs/senior-engineer", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/public/jobs/senior-engineer/view", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, r, http.MethodPost, "/public/jobs/senior-engineer/share", gin.H{"platform": "linkedin"})
	require.Equal(t, http.StatusAccepted, w.Code)

	// After unpublish the public surface 404s even though the slug persists.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%s/unpublish", job.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/public/jobs/senior-engineer", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishNonOpenJobReturns422(t *testing.T) {
	st := store.NewMem()
	r := newTestRouter(st)

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
		"organization_id": uuid.New(),
		"title":           "Draft Role",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var job models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%s/publish", job.ID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "invalid_state", payload["kind"])
}

func TestMoveStageErrorMapping(t *testing.T) {
	st := store.NewMem()
	r := newTestRouter(st)

	w := doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/v1/applications/%s/stage", uuid.New()),
		gin.H{"stage_id": uuid.New()})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/v1/applications/%s/stage", uuid.New()),
		gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownSlugIs404(t *testing.T) {
	r := newTestRouter(store.NewMem())
	w := doJSON(t, r, http.MethodGet, "/public/jobs/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
