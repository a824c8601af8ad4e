package api

import (
	"alcyxob/athlete-tracker/internal/repository"
	"alcyxob/athlete-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// statusFor maps a service error to its HTTP status. Unknown errors are internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidFeedbackKey),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrReservedName),
		errors.Is(err, service.ErrNotAthlete):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrSessionAccessDenied),
		errors.Is(err, service.ErrCannotChangeOwnRole):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrRMNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrSessionNotStarted),
		errors.Is(err, service.ErrSessionAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, service.ErrWeightRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// abortWithServiceError answers with the status of err. Internal errors are
// logged and replaced by fallback so that no storage detail leaks to clients.
func abortWithServiceError(c *gin.Context, err error, fallback string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		log.WithField("path", c.Request.URL.Path).Errorf("%s: %s", fallback, err)
		abortWithError(c, code, fallback)
		return
	}
	abortWithError(c, code, err.Error())
}
