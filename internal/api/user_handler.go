package api

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type AssignGroupRequest struct {
	// GroupID empty removes the athlete from their group.
	GroupID string `json:"groupId"`
}

type SetRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=athlete admin superadmin"`
}

// Me godoc
// @Summary Get the profile of the authenticated user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve profile.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListAthletes godoc
// @Summary List every athlete
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Router /admin/athletes [get]
func (h *UserHandler) ListAthletes(c *gin.Context) {
	athletes, err := h.userService.ListAthletes(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve athletes.")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(athletes))
}

// AssignGroup godoc
// @Summary Put an athlete in a training group
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete ID"
// @Param group body AssignGroupRequest true "Group"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid ID or not an athlete"
// @Failure 404 {object} gin.H "Athlete not found"
// @Router /admin/athletes/{id}/group [put]
func (h *UserHandler) AssignGroup(c *gin.Context) {
	athleteID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req AssignGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	athlete, err := h.userService.AssignGroup(c.Request.Context(), athleteID, req.GroupID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to assign group.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(athlete))
}

// SetRole godoc
// @Summary Change the role of a user
// @Tags SuperAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param role body SetRoleRequest true "Role"
// @Success 200 {object} UserResponse
// @Failure 403 {object} gin.H "Cannot change own role"
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) SetRole(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.SetRole(c.Request.Context(), actorID, userID, req.Role)
	if err != nil {
		abortWithServiceError(c, err, "Failed to change role.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}
