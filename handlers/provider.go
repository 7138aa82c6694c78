package handlers

import (
	"net/http"

	"needmeet/models"
	"needmeet/services/provider"
	"needmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider management over HTTP.
type ProviderHandler struct {
	Service provider.ProviderService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(service provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: service}
}

// GetAllProvidersHandler handles GET /api/providers.
func (h *ProviderHandler) GetAllProvidersHandler(c *gin.Context) {
	providers, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderByIDHandler handles GET /api/providers/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProvidersByServiceHandler handles GET /api/providers/service/:serviceType.
func (h *ProviderHandler) GetProvidersByServiceHandler(c *gin.Context) {
	providers, err := h.Service.GetByServiceType(c.Request.Context(), c.Param("serviceType"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// CreateProviderHandler handles POST /api/providers.
func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	var input provider.CreateProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Required fields are missing", err.Error())
		return
	}

	created, err := h.Service.CreateProvider(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Warn("Create provider failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProviderHandler handles PUT /api/providers/:id.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	var update models.Provider
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateProvider(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
