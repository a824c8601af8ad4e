package api

import (
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RMHandler struct {
	rmService service.RMService
}

func NewRMHandler(rmService service.RMService) *RMHandler {
	return &RMHandler{rmService: rmService}
}

// ManualRMRequest is a tested set the one-rep max is estimated from.
type ManualRMRequest struct {
	Name   string  `json:"name" binding:"required"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Reps   int     `json:"reps" binding:"required,gte=1"`
}

type VMARequest struct {
	Speed float64 `json:"speed" binding:"required,gt=0"` // km/h
}

// List godoc
// @Summary List the authenticated athlete's RMs and VMA
// @Tags RM
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RMList
// @Router /rm [get]
func (h *RMHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	list, err := h.rmService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve RMs.")
		return
	}
	list.Weights = nonNil(list.Weights)
	c.JSON(http.StatusOK, list)
}

// SaveManual godoc
// @Summary Save a one-rep max from a tested set
// @Tags RM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rm body ManualRMRequest true "Tested set"
// @Success 200 {object} domain.RMRecord
// @Router /rm [post]
func (h *RMHandler) SaveManual(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req ManualRMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.rmService.SaveManual(c.Request.Context(), userID, req.Name, req.Weight, req.Reps)
	if err != nil {
		abortWithServiceError(c, err, "Failed to save RM.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// SaveVMA godoc
// @Summary Record a new maximal aerobic speed
// @Tags RM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vma body VMARequest true "Speed in km/h"
// @Success 200 {object} domain.RMRecord
// @Router /rm/vma [post]
func (h *RMHandler) SaveVMA(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req VMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.rmService.SaveVMA(c.Request.Context(), userID, req.Speed)
	if err != nil {
		abortWithServiceError(c, err, "Failed to save VMA.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete an RM by name
// @Tags RM
// @Security BearerAuth
// @Param name path string true "Exercise name, or vma"
// @Success 204
// @Failure 404 {object} gin.H "RM not found"
// @Router /rm/{name} [delete]
func (h *RMHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.rmService.Delete(c.Request.Context(), userID, c.Param("name")); err != nil {
		abortWithServiceError(c, err, "Failed to delete RM.")
		return
	}
	c.Status(http.StatusNoContent)
}
