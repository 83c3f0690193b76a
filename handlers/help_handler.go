package handlers

import (
	"net/http"

	"glowtype/services"

	"github.com/gin-gonic/gin"
)

type HelpHandler struct {
	service *services.HelpService
}

func NewHelpHandler(service *services.HelpService) *HelpHandler {
	return &HelpHandler{service: service}
}

func (h *HelpHandler) GetHelp(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetHelp(langFromRequest(c)))
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
