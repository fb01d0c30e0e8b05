package handlers

import (
	"errors"
	"net/http"

	"campusportal/middleware"
	"campusportal/models"
	"campusportal/services/booking"
	"campusportal/services/user"
	"campusportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login and account administration.
type UserHandler struct {
	UserService    user.UserService
	BookingService booking.BookingService
}

func NewUserHandler(userSvc user.UserService, bookingSvc booking.BookingService) *UserHandler {
	return &UserHandler{UserService: userSvc, BookingService: bookingSvc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.UserService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			getLogger(c).Info("Failed login", zap.String("email", req.Email))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles DELETE /api/auth/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.UserService.Logout(c.Request.Context(), c.GetString(middleware.CtxUserID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /api/users (admin).
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateRoleHandler handles PUT /api/users/:id/role (admin).
func (h *UserHandler) UpdateRoleHandler(c *gin.Context) {
	var req models.RoleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	usr, err := h.UserService.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Role changed", zap.String("target", usr.ID), zap.String("role", usr.Role))
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/:id (admin).
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.UserService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// AdminBookingsHandler handles GET /api/admin/bookings?status=.
func (h *UserHandler) AdminBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}
	bookings, err := h.BookingService.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
