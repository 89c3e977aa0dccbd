package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/request"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles admin authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Password is required")
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{"token": token})
}
