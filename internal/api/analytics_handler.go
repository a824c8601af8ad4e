package api

import (
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	reportService    service.ReportService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, reportService service.ReportService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		reportService:    reportService,
	}
}

// ExportRequest selects how many days ending today the report covers.
type ExportRequest struct {
	Days int `json:"days" binding:"required,gte=1"`
}

// Dashboard godoc
// @Summary Current workload, ACWR band and ratio history of the authenticated athlete
// @Description acwr and band are null until the chronic window holds enough completed sessions.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	dashboard, err := h.analyticsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to compute dashboard.")
		return
	}
	dashboard.History = nonNil(dashboard.History)
	c.JSON(http.StatusOK, dashboard)
}

// Monitoring godoc
// @Summary ACWR of every athlete over the monitoring window
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Monitoring
// @Router /admin/monitoring [get]
func (h *AnalyticsHandler) Monitoring(c *gin.Context) {
	monitoring, err := h.analyticsService.Monitoring(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to compute monitoring.")
		return
	}
	monitoring.Athletes = nonNil(monitoring.Athletes)
	c.JSON(http.StatusOK, monitoring)
}

// ExportReport godoc
// @Summary Export an athlete's ACWR history as CSV
// @Description Returns the report metadata and a presigned download URL.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete ID"
// @Param export body ExportRequest true "Days"
// @Success 201 {object} service.ReportLink
// @Router /admin/athletes/{id}/reports [post]
func (h *AnalyticsHandler) ExportReport(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	athleteID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	link, err := h.reportService.Export(c.Request.Context(), adminID, athleteID, req.Days)
	if err != nil {
		abortWithServiceError(c, err, "Failed to export report.")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// ListReports godoc
// @Summary List an athlete's exported reports, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete ID"
// @Success 200 {array} service.ReportLink
// @Router /admin/athletes/{id}/reports [get]
func (h *AnalyticsHandler) ListReports(c *gin.Context) {
	athleteID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	links, err := h.reportService.List(c.Request.Context(), athleteID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve reports.")
		return
	}
	c.JSON(http.StatusOK, nonNil(links))
}
