package handlers

import (
	"net/http"
	"time"

	"needmeet/models"
	"needmeet/services/emergency"
	"needmeet/utils"

	"github.com/gin-gonic/gin"
)

// EmergencyHandler receives SOS alerts from authenticated users.
type EmergencyHandler struct {
	Service emergency.EmergencyService
}

func NewEmergencyHandler(service emergency.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{Service: service}
}

// SOSHandler handles POST /api/emergency/sos.
func (h *EmergencyHandler) SOSHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}

	var req struct {
		Location string `json:"location" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "location and message are required", err.Error())
		return
	}

	alert := models.SOSAlert{
		UserID:    requester,
		Location:  req.Location,
		Message:   req.Message,
		Timestamp: time.Now(),
	}
	if err := h.Service.SendSOS(c.Request.Context(), alert); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "SOS alert dispatched"})
}
