package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	ParserService    *services.ParserService
	CandidateService *services.CandidateService
}

func NewCandidateHandler(p *services.ParserService, cs *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{ParserService: p, CandidateService: cs}
}

// ExtractProfile is the POST /candidates/extract endpoint used by the
// browser extension: raw profile HTML in, structured candidate JSON out.
func (h *CandidateHandler) ExtractProfile(c *gin.Context) {
	var req dtos.ProfileExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	extractedJSON, err := h.ParserService.ExtractCandidateProfile(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Extraction failed: " + err.Error()})
		return
	}

	// json.RawMessage prevents Go from escaping the inner JSON string
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}

func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dtos.CandidateCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	candidate, err := h.CandidateService.CreateCandidate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}
