package handlers

import (
	"net/http"

	"needmeet/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(service admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
