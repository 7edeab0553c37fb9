package handlers

import (
	"net/http"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/listing"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/pipeline"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobHandler serves the recruiter dashboard's job surface. Publish and
// unpublish go through the listing gateway; the board and stage list go
// through the pipeline engine.
type JobHandler struct {
	JobService *services.JobService
	Engine     *pipeline.Engine
	Gateway    *listing.Gateway
}

func NewJobHandler(j *services.JobService, e *pipeline.Engine, g *listing.Gateway) *JobHandler {
	return &JobHandler{JobService: j, Engine: e, Gateway: g}
}

func jobID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id: " + err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	orgID, err := uuid.Parse(c.Query("organization_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization_id: " + err.Error()})
		return
	}
	jobs, err := h.JobService.ListJobs(c.Request.Context(), orgID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.JobService.GetJob(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.JobStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.UpdateJobStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListStages(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	stages, err := h.Engine.ListStagesForJob(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stages)
}

// Board returns the job's applications grouped by current stage for the
// kanban view, with unassigned/drifted applications in their own buckets.
func (h *JobHandler) Board(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	apps, err := h.JobService.ApplicationsForJob(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buckets": pipeline.GroupByStage(apps)})
}

func (h *JobHandler) CreateApplication(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.JobService.CreateApplication(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *JobHandler) Publish(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.Gateway.Publish(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Unpublish(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.Gateway.Unpublish(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
