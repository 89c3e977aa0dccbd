package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/request"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles key/value settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/v1/settings/:key
func (h *SettingsHandler) Get(c *gin.Context) {
	value, err := h.settingsService.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Setting retrieved", gin.H{"key": c.Param("key"), "value": value})
}

// Set handles PUT /api/v1/settings/:key
func (h *SettingsHandler) Set(c *gin.Context) {
	var req request.SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Value is required")
		return
	}

	if err := h.settingsService.SetSetting(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Setting saved", nil)
}
