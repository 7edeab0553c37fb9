package handlers

import (
	"net/http"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/apperr"
	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps the typed error taxonomy onto HTTP statuses. Anything
// without a kind is a plain 500; the core never gets blamed for those.
func writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidStage, apperr.KindInvalidState:
		status = http.StatusUnprocessableEntity
	case apperr.KindSlugAllocationFailed, apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindTimeout:
		status = http.StatusGatewayTimeout
	}
	payload := gin.H{"error": err.Error()}
	if kind != "" {
		payload["kind"] = kind
	}
	c.JSON(status, payload)
}
