package handlers

import (
	"errors"
	"net/http"

	"glowtype/models"

	"github.com/gin-gonic/gin"
)

var statusByKind = map[models.ErrorKind]int{
	models.KindInvalidPayload:       http.StatusBadRequest,
	models.KindIncompleteSubmission: http.StatusBadRequest,
	models.KindInvalidOption:        http.StatusBadRequest,
	models.KindInvalidState:         http.StatusBadRequest,
	models.KindUnknownAttempt:       http.StatusNotFound,
	models.KindUnknownSession:       http.StatusNotFound,
	models.KindUnknownGlowtype:      http.StatusNotFound,
}

// respondError maps a typed service error onto the wire envelope. Anything
// without a mapped kind (configuration defects included) surfaces as a
// generic 500 so internals never leak to callers.
func respondError(c *gin.Context, err error) {
	var appErr *models.Error
	if errors.As(err, &appErr) {
		if status, ok := statusByKind[appErr.Kind]; ok {
			c.JSON(status, gin.H{"error": gin.H{"kind": appErr.Kind, "message": appErr.Message}})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{"kind": models.KindInternal, "message": "internal error"},
	})
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{"kind": models.KindInvalidPayload, "message": "invalid payload"},
	})
}

// langFromRequest resolves the locale: explicit query param first, then the
// Accept-Language header.
func langFromRequest(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return c.GetHeader("Accept-Language")
}
