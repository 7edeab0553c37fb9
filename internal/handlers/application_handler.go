package handlers

import (
	"net/http"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	Engine *pipeline.Engine
}

func NewApplicationHandler(e *pipeline.Engine) *ApplicationHandler {
	return &ApplicationHandler{Engine: e}
}

// MoveStage is the PATCH /applications/:id/stage endpoint. The dashboard
// lets a recruiter pick any stage of the job from a dropdown; the engine
// validates that the stage belongs to the application's job and applies it.
func (h *ApplicationHandler) MoveStage(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id: " + err.Error()})
		return
	}
	var req dtos.StageMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Engine.MoveApplicationToStage(c.Request.Context(), appID, req.StageID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
