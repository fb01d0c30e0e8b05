package routes

import (
	"net/http"
	"time"

	"campusportal/handlers"
	"campusportal/middleware"
	"campusportal/models"
	"campusportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.DELETE("/logout", middleware.JWTAuthMiddleware(hb.UserRepo), hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers profile and account administration endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)

		admin := api.Group("", middleware.RequireRoles(models.RoleAdmin))
		admin.GET("", hb.ListUsersHandler)
		admin.PUT("/:id/role", hb.UpdateRoleHandler)
		admin.DELETE("/:id", hb.DeleteUserHandler)
	}
}

// RegisterRoomRoutes registers rooms, maintenance windows and availability.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListRoomsHandler)
		api.GET("/available", hb.AllAvailabilityHandler)
		api.GET("/:id", hb.GetRoomHandler)
		api.GET("/:id/available", hb.RoomAvailabilityHandler)

		admin := api.Group("", middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateRoomHandler)
		admin.PUT("/:id", hb.UpdateRoomHandler)
		admin.DELETE("/:id", hb.DeleteRoomHandler)
		admin.POST("/:id/maintenance", hb.AddMaintenanceHandler)
		admin.PUT("/:id/maintenance", hb.ReplaceMaintenanceHandler)
	}
}

// RegisterBookingRoutes registers one-off room bookings.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/mine", hb.MyBookingsHandler)
		api.PUT("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterTimetableRoutes registers weekly class slots. Everyone can read them;
// lecturers and admins write.
func RegisterTimetableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timetables")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.TimetableReportHandler)

		staff := api.Group("", middleware.RequireRoles(models.RoleLecturer, models.RoleAdmin))
		staff.POST("", hb.CreateTimetableHandler)
		staff.PUT("/:id", hb.UpdateTimetableHandler)
		staff.DELETE("/:id", hb.DeleteTimetableHandler)
	}
}

// RegisterCourseRoutes registers the course catalogue.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListCoursesHandler)

		admin := api.Group("", middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateCourseHandler)
		admin.PUT("/:id", hb.UpdateCourseHandler)
		admin.DELETE("/:id", hb.DeleteCourseHandler)
	}
}

// RegisterBoardRoutes registers announcements and maintenance reports.
func RegisterBoardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.UserRepo)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	ann := r.Group("/api/announcements", auth)
	{
		ann.GET("", hb.ListAnnouncementsHandler)
		ann.POST("", adminOnly, hb.PostAnnouncementHandler)
		ann.DELETE("/:id", adminOnly, hb.DeleteAnnouncementHandler)
	}

	rep := r.Group("/api/reports", auth)
	{
		rep.POST("", hb.FileReportHandler)
		rep.GET("", adminOnly, hb.ListReportsHandler)
		rep.PUT("/:id/status", adminOnly, hb.UpdateReportStatusHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
		adminGroup.GET("/bookings", hb.AdminBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the health monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTimetableRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterBoardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
