package handlers

import (
	"net/http"

	"needmeet/models"
	"needmeet/services/user"
	"needmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration, authentication and user management.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// SignUpHandler handles POST /api/auth/signup.
func (h *UserHandler) SignUpHandler(c *gin.Context) {
	var input user.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email, and password are required", err.Error())
		return
	}

	resp, err := h.Service.SignUp(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Warn("Signup failed", zap.String("email", input.Email), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler handles POST /api/auth/login.
func (h *UserHandler) SignInHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required", err.Error())
		return
	}

	resp, err := h.Service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllUsersHandler handles GET /api/auth/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByIDHandler handles GET /api/users/id/:id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	usr, err := h.Service.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/users/update/:id. Principals may only
// update their own account.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if requester != id {
		utils.JSONError(c, http.StatusForbidden, "you can only update your own account", "")
		return
	}

	var update models.User
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	update.ID = id

	updated, err := h.Service.UpdateUser(c.Request.Context(), update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUserHandler handles DELETE /api/users/delete/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if requester != id {
		utils.JSONError(c, http.StatusForbidden, "you can only delete your own account", "")
		return
	}

	if err := h.Service.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
