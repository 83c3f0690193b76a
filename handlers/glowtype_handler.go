package handlers

import (
	"net/http"

	"glowtype/services"

	"github.com/gin-gonic/gin"
)

type GlowtypeHandler struct {
	service *services.GlowtypeService
}

func NewGlowtypeHandler(service *services.GlowtypeService) *GlowtypeHandler {
	return &GlowtypeHandler{service: service}
}

func (h *GlowtypeHandler) GetGlowtype(c *gin.Context) {
	resp, err := h.service.GetGlowtype(c.Param("id"), langFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
