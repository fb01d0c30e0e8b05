package handlers

import (
	"net/http"

	"campusportal/middleware"
	"campusportal/models"
	"campusportal/services/board"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	BoardService board.BoardService
}

func NewBoardHandler(svc board.BoardService) *BoardHandler {
	return &BoardHandler{BoardService: svc}
}

func (h *BoardHandler) ListAnnouncementsHandler(c *gin.Context) {
	list, err := h.BoardService.ListAnnouncements(c.Request.Context(), c.GetString(middleware.CtxRole))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BoardHandler) PostAnnouncementHandler(c *gin.Context) {
	var req models.AnnouncementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a, err := h.BoardService.PostAnnouncement(c.Request.Context(), c.GetString(middleware.CtxUserID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *BoardHandler) DeleteAnnouncementHandler(c *gin.Context) {
	if err := h.BoardService.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

// FileReportHandler handles POST /api/reports.
func (h *BoardHandler) FileReportHandler(c *gin.Context) {
	var req models.ReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rep, err := h.BoardService.FileReport(c.Request.Context(), c.GetString(middleware.CtxUserID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// ListReportsHandler handles GET /api/reports?status= (admin).
func (h *BoardHandler) ListReportsHandler(c *gin.Context) {
	reps, err := h.BoardService.ListReports(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reps)
}

// UpdateReportStatusHandler handles PUT /api/reports/:id/status (admin).
func (h *BoardHandler) UpdateReportStatusHandler(c *gin.Context) {
	var req models.ReportStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rep, err := h.BoardService.UpdateReportStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}
