package api

import (
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WeightHandler struct {
	weightService service.WeightService
}

func NewWeightHandler(weightService service.WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

type WeightRequest struct {
	Kg float64 `json:"kg" binding:"required,gt=0"`
}

// Record godoc
// @Summary Record the authenticated athlete's body weight
// @Description At most once every 7 days.
// @Tags Weight
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weight body WeightRequest true "Body weight"
// @Success 201 {object} domain.WeightEntry
// @Failure 429 {object} gin.H "Updated less than 7 days ago"
// @Router /weight [post]
func (h *WeightHandler) Record(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req WeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.weightService.Record(c.Request.Context(), userID, req.Kg)
	if err != nil {
		abortWithServiceError(c, err, "Failed to record body weight.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// History godoc
// @Summary List the authenticated athlete's body weight entries
// @Tags Weight
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WeightEntry
// @Router /weight [get]
func (h *WeightHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.weightService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve body weight history.")
		return
	}
	c.JSON(http.StatusOK, nonNil(entries))
}
