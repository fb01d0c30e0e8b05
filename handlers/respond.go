package handlers

import (
	"context"
	"errors"
	"net/http"

	"campusportal/database/repository"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Admission rejections are
// ordinary 400s carrying the reason.
func respondError(c *gin.Context, err error) {
	var admission *scheduling.AdmissionError
	if errors.As(err, &admission) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        string(admission.Reason),
			"message":      admission.Reason.Message(),
			"conflictWith": admission.ConflictWith,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scheduling.ErrInvalidInterval),
		errors.Is(err, scheduling.ErrInvalidDate),
		errors.Is(err, scheduling.ErrInvalidWindow),
		errors.Is(err, scheduling.ErrInvalidSlotSize),
		errors.Is(err, utils.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, utils.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, utils.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, utils.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		getLogger(c).Error("Request failed", zap.Error(err))
		utils.JSONError(c, status, "Internal Server Error", "An unexpected error occurred. Please try again later.")
		return
	}
	utils.JSONError(c, status, http.StatusText(status), err.Error())
}

// bindError answers 400 for a payload gin could not bind or validate.
func bindError(c *gin.Context, err error) {
	getLogger(c).Debug("Invalid request payload", zap.Error(err))
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
}
