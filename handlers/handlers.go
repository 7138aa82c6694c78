package handlers

import (
	"errors"
	"net/http"

	"needmeet/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to its transport status and emits
// the standard error payload.
func respondServiceError(c *gin.Context, err error) {
	status := utils.HTTPStatusFor(err)
	var svcErr *utils.ServiceError
	if errors.As(err, &svcErr) {
		utils.JSONError(c, status, svcErr.Message, string(svcErr.Kind))
		return
	}
	utils.JSONError(c, status, "Internal error", err.Error())
}

// requesterID returns the authenticated principal set by the auth middleware.
func requesterID(c *gin.Context) (string, bool) {
	id := c.GetString("userID")
	if id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return "", false
	}
	return id, true
}
