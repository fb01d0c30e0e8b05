package handlers

import (
	"net/http"

	"campusportal/models"
	"campusportal/services/course"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	CourseService course.CourseService
}

func NewCourseHandler(svc course.CourseService) *CourseHandler {
	return &CourseHandler{CourseService: svc}
}

func (h *CourseHandler) ListCoursesHandler(c *gin.Context) {
	courses, err := h.CourseService.GetAllCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	var req models.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	crs, err := h.CourseService.CreateCourse(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crs)
}

func (h *CourseHandler) UpdateCourseHandler(c *gin.Context) {
	var req models.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	crs, err := h.CourseService.UpdateCourse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crs)
}

func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	if err := h.CourseService.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
