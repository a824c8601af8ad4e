package api

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WellnessHandler struct {
	wellnessService service.WellnessService
}

func NewWellnessHandler(wellnessService service.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellnessService: wellnessService}
}

// WellnessRequest is the daily questionnaire. Ranges are checked by the service.
type WellnessRequest struct {
	Sleep      int            `json:"sleep"`
	Motivation int            `json:"motivation"`
	Nutrition  int            `json:"nutrition"`
	Hydration  int            `json:"hydration"`
	Fatigue    int            `json:"fatigue"`
	Stress     int            `json:"stress"`
	Pain       int            `json:"pain"`
	PainZones  map[string]int `json:"painZones"`
}

// Submit godoc
// @Summary Fill in today's wellness questionnaire
// @Description Replaces today's entry if one exists.
// @Tags Wellness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param wellness body WellnessRequest true "Questionnaire"
// @Success 200 {object} domain.WellnessEntry
// @Failure 400 {object} gin.H "Score out of range"
// @Router /wellness [post]
func (h *WellnessHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req WellnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.wellnessService.SubmitToday(c.Request.Context(), userID, service.WellnessInput{
		Sleep:      req.Sleep,
		Motivation: req.Motivation,
		Nutrition:  req.Nutrition,
		Hydration:  req.Hydration,
		Fatigue:    req.Fatigue,
		Stress:     req.Stress,
		Pain:       req.Pain,
		PainZones:  req.PainZones,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to save wellness entry.")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Mine godoc
// @Summary List the authenticated athlete's wellness entries
// @Tags Wellness
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WellnessEntry
// @Router /wellness [get]
func (h *WellnessHandler) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.wellnessService.MyHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve wellness entries.")
		return
	}
	c.JSON(http.StatusOK, nonNil(entries))
}

// ForAthlete godoc
// @Summary List an athlete's wellness entries
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete ID"
// @Success 200 {array} domain.WellnessEntry
// @Router /admin/athletes/{id}/wellness [get]
func (h *WellnessHandler) ForAthlete(c *gin.Context) {
	athleteID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	entries, err := h.wellnessService.ForAthlete(c.Request.Context(), athleteID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve wellness entries.")
		return
	}
	c.JSON(http.StatusOK, nonNil(entries))
}

// ByDate godoc
// @Summary Wellness overview of every athlete for one day
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} service.AthleteWellness
// @Router /admin/wellness [get]
func (h *WellnessHandler) ByDate(c *gin.Context) {
	date := c.Query("date")
	if date != "" {
		if _, err := domain.ParseDate(date); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
			return
		}
	}
	overview, err := h.wellnessService.ByDate(c.Request.Context(), date)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve wellness overview.")
		return
	}
	c.JSON(http.StatusOK, nonNil(overview))
}

// nonNil keeps empty lists as [] rather than null in responses.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
