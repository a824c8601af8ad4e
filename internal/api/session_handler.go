package api

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

// SessionRequest is the programming of a session. Blocks and exercises use the stored schema.
type SessionRequest struct {
	Title             string             `json:"title" binding:"required"`
	Date              string             `json:"date" binding:"required"`
	Target            domain.Target      `json:"target"`
	Type              domain.SessionType `json:"type" binding:"required,oneof=strength sprint endurance"`
	Blocks            []domain.Block     `json:"blocks"`
	EstimatedDuration int                `json:"estimatedDuration" binding:"gte=0"`
}

func (r SessionRequest) toInput() service.SessionInput {
	return service.SessionInput{
		Title:             r.Title,
		Date:              r.Date,
		Target:            r.Target,
		Type:              r.Type,
		Blocks:            r.Blocks,
		EstimatedDuration: r.EstimatedDuration,
	}
}

// FeedbackRequest addresses an exercise by its "block-exercise" key.
type FeedbackRequest struct {
	Key            string   `json:"key" binding:"required"`
	RPE            *float64 `json:"rpe"`
	ActualWeight   float64  `json:"actualWeight" binding:"gte=0"`
	ActualReps     int      `json:"actualReps" binding:"gte=0"`
	ActualDistance float64  `json:"actualDistance" binding:"gte=0"`
	Notes          string   `json:"notes"`
}

// --- Admin programming ---

// Create godoc
// @Summary Program a session for a group or an athlete
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body SessionRequest true "Session"
// @Success 201 {object} domain.WorkoutSession
// @Failure 400 {object} gin.H "Invalid session"
// @Router /admin/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), adminID, req.toInput())
	if err != nil {
		abortWithServiceError(c, err, "Failed to create session.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Update godoc
// @Summary Replace the programming of a session
// @Description Athlete progress on the session is kept.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param session body SessionRequest true "Session"
// @Success 200 {object} domain.WorkoutSession
// @Router /admin/sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	sessionID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.Update(c.Request.Context(), sessionID, req.toInput())
	if err != nil {
		abortWithServiceError(c, err, "Failed to update session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Delete godoc
// @Summary Delete a session
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Router /admin/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.sessionService.Delete(c.Request.Context(), sessionID); err != nil {
		abortWithServiceError(c, err, "Failed to delete session.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAll godoc
// @Summary List every session with the progress of all athletes
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutSession
// @Router /admin/sessions [get]
func (h *SessionHandler) ListAll(c *gin.Context) {
	sessions, err := h.sessionService.ListAll(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve sessions.")
		return
	}
	c.JSON(http.StatusOK, nonNil(sessions))
}

// GetAny godoc
// @Summary Get a session with the progress of all athletes
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} domain.WorkoutSession
// @Router /admin/sessions/{id} [get]
func (h *SessionHandler) GetAny(c *gin.Context) {
	sessionID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	session, err := h.sessionService.Get(c.Request.Context(), sessionID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// --- Athlete progress ---

// ListMine godoc
// @Summary List the sessions assigned to the authenticated athlete
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutSession
// @Router /sessions [get]
func (h *SessionHandler) ListMine(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessions, err := h.sessionService.ListMine(c.Request.Context(), athleteID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve sessions.")
		return
	}
	c.JSON(http.StatusOK, nonNil(sessions))
}

// Detail godoc
// @Summary Get a session with the athlete's targets resolved against their RMs
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} service.SessionDetail
// @Failure 403 {object} gin.H "Session not assigned to the athlete"
// @Router /sessions/{id} [get]
func (h *SessionHandler) Detail(c *gin.Context) {
	athleteID, sessionID, ok := athleteAndSession(c)
	if !ok {
		return
	}
	detail, err := h.sessionService.Detail(c.Request.Context(), athleteID, sessionID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve session.")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Start godoc
// @Summary Start a session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} domain.WorkoutSession
// @Failure 409 {object} gin.H "Session already completed"
// @Router /sessions/{id}/start [post]
func (h *SessionHandler) Start(c *gin.Context) {
	athleteID, sessionID, ok := athleteAndSession(c)
	if !ok {
		return
	}
	session, err := h.sessionService.Start(c.Request.Context(), athleteID, sessionID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to start session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Feedback godoc
// @Summary Record feedback for one exercise of a started session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param feedback body FeedbackRequest true "Feedback"
// @Success 200 {object} domain.WorkoutSession
// @Failure 400 {object} gin.H "Invalid key or RPE"
// @Failure 409 {object} gin.H "Session not started or already completed"
// @Router /sessions/{id}/feedback [put]
func (h *SessionHandler) Feedback(c *gin.Context) {
	athleteID, sessionID, ok := athleteAndSession(c)
	if !ok {
		return
	}
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	key, err := domain.ParseFeedbackKey(req.Key)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.RecordFeedback(c.Request.Context(), athleteID, sessionID, key, service.FeedbackInput{
		RPE:            req.RPE,
		ActualWeight:   req.ActualWeight,
		ActualReps:     req.ActualReps,
		ActualDistance: req.ActualDistance,
		Notes:          req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to record feedback.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// End godoc
// @Summary Complete a session
// @Description Strength sessions adjust the referenced RMs from the recorded RPE.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} service.EndResult
// @Failure 409 {object} gin.H "Session not started or already completed"
// @Router /sessions/{id}/end [post]
func (h *SessionHandler) End(c *gin.Context) {
	athleteID, sessionID, ok := athleteAndSession(c)
	if !ok {
		return
	}
	result, err := h.sessionService.End(c.Request.Context(), athleteID, sessionID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to end session.")
		return
	}
	if result.Adjustments == nil {
		result.Adjustments = []service.RMAdjustment{}
	}
	c.JSON(http.StatusOK, result)
}

func athleteAndSession(c *gin.Context) (athleteID, sessionID primitive.ObjectID, ok bool) {
	if athleteID, ok = currentUserID(c); !ok {
		return
	}
	sessionID, ok = pathObjectID(c, "id")
	return
}
