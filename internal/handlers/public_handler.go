package handlers

import (
	"net/http"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/listing"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated job page: slug resolution plus
// the fire-and-forget view/share beacons.
type PublicHandler struct {
	Gateway *listing.Gateway
}

func NewPublicHandler(g *listing.Gateway) *PublicHandler {
	return &PublicHandler{Gateway: g}
}

func (h *PublicHandler) ResolveJob(c *gin.Context) {
	job, err := h.Gateway.ResolvePublicJob(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *PublicHandler) RecordView(c *gin.Context) {
	if err := h.Gateway.RecordView(c.Request.Context(), c.Param("slug")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"recorded": true})
}

func (h *PublicHandler) RecordShare(c *gin.Context) {
	var req dtos.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Gateway.RecordShare(c.Request.Context(), c.Param("slug"), req.Platform); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"recorded": true})
}
