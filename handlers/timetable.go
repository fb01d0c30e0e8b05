package handlers

import (
	"net/http"

	"campusportal/middleware"
	"campusportal/models"
	"campusportal/services/timetable"

	"github.com/gin-gonic/gin"
)

type TimetableHandler struct {
	TimetableService timetable.TimetableService
}

func NewTimetableHandler(svc timetable.TimetableService) *TimetableHandler {
	return &TimetableHandler{TimetableService: svc}
}

// TimetableReportHandler handles GET /api/timetables?roomId=&courseId=&day= and
// answers {timetables, conflicts}.
func (h *TimetableHandler) TimetableReportHandler(c *gin.Context) {
	var filter models.TimetableFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}
	report, err := h.TimetableService.GetReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *TimetableHandler) CreateTimetableHandler(c *gin.Context) {
	var req models.TimetableInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	e, err := h.TimetableService.CreateEntry(c.Request.Context(), c.GetString(middleware.CtxUserID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *TimetableHandler) UpdateTimetableHandler(c *gin.Context) {
	var req models.TimetableInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	e, err := h.TimetableService.UpdateEntry(c.Request.Context(),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *TimetableHandler) DeleteTimetableHandler(c *gin.Context) {
	err := h.TimetableService.DeleteEntry(c.Request.Context(),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timetable entry deleted"})
}
