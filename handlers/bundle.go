package handlers

import (
	userRepoPkg "campusportal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route registration.
type HandlerBundle struct {
	UserRepo          userRepoPkg.UserRepository
	MaxRequestsPerMin int

	// Auth and user endpoints
	RegisterHandler      gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GetMeHandler         gin.HandlerFunc
	ListUsersHandler     gin.HandlerFunc
	UpdateRoleHandler    gin.HandlerFunc
	DeleteUserHandler    gin.HandlerFunc
	AdminBookingsHandler gin.HandlerFunc

	// Room endpoints
	ListRoomsHandler          gin.HandlerFunc
	GetRoomHandler            gin.HandlerFunc
	CreateRoomHandler         gin.HandlerFunc
	UpdateRoomHandler         gin.HandlerFunc
	DeleteRoomHandler         gin.HandlerFunc
	AddMaintenanceHandler     gin.HandlerFunc
	ReplaceMaintenanceHandler gin.HandlerFunc
	RoomAvailabilityHandler   gin.HandlerFunc
	AllAvailabilityHandler    gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	MyBookingsHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Timetable endpoints
	TimetableReportHandler gin.HandlerFunc
	CreateTimetableHandler gin.HandlerFunc
	UpdateTimetableHandler gin.HandlerFunc
	DeleteTimetableHandler gin.HandlerFunc

	// Course endpoints
	ListCoursesHandler  gin.HandlerFunc
	CreateCourseHandler gin.HandlerFunc
	UpdateCourseHandler gin.HandlerFunc
	DeleteCourseHandler gin.HandlerFunc

	// Board endpoints
	ListAnnouncementsHandler  gin.HandlerFunc
	PostAnnouncementHandler   gin.HandlerFunc
	DeleteAnnouncementHandler gin.HandlerFunc
	FileReportHandler         gin.HandlerFunc
	ListReportsHandler        gin.HandlerFunc
	UpdateReportStatusHandler gin.HandlerFunc
}

// NewHandlerBundle fills a bundle from the per-area handlers.
func NewHandlerBundle(
	users userRepoPkg.UserRepository,
	maxRequestsPerMin int,
	u *UserHandler,
	rm *RoomHandler,
	b *BookingHandler,
	tt *TimetableHandler,
	crs *CourseHandler,
	brd *BoardHandler,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:          users,
		MaxRequestsPerMin: maxRequestsPerMin,

		RegisterHandler:      u.RegisterHandler,
		LoginHandler:         u.LoginHandler,
		LogoutHandler:        u.LogoutHandler,
		GetMeHandler:         u.GetMeHandler,
		ListUsersHandler:     u.ListUsersHandler,
		UpdateRoleHandler:    u.UpdateRoleHandler,
		DeleteUserHandler:    u.DeleteUserHandler,
		AdminBookingsHandler: u.AdminBookingsHandler,

		ListRoomsHandler:          rm.ListRoomsHandler,
		GetRoomHandler:            rm.GetRoomHandler,
		CreateRoomHandler:         rm.CreateRoomHandler,
		UpdateRoomHandler:         rm.UpdateRoomHandler,
		DeleteRoomHandler:         rm.DeleteRoomHandler,
		AddMaintenanceHandler:     rm.AddMaintenanceHandler,
		ReplaceMaintenanceHandler: rm.ReplaceMaintenanceHandler,
		RoomAvailabilityHandler:   rm.RoomAvailabilityHandler,
		AllAvailabilityHandler:    rm.AllAvailabilityHandler,

		CreateBookingHandler:       b.CreateBookingHandler,
		MyBookingsHandler:          b.MyBookingsHandler,
		ListBookingsHandler:        b.ListBookingsHandler,
		UpdateBookingStatusHandler: b.UpdateBookingStatusHandler,

		TimetableReportHandler: tt.TimetableReportHandler,
		CreateTimetableHandler: tt.CreateTimetableHandler,
		UpdateTimetableHandler: tt.UpdateTimetableHandler,
		DeleteTimetableHandler: tt.DeleteTimetableHandler,

		ListCoursesHandler:  crs.ListCoursesHandler,
		CreateCourseHandler: crs.CreateCourseHandler,
		UpdateCourseHandler: crs.UpdateCourseHandler,
		DeleteCourseHandler: crs.DeleteCourseHandler,

		ListAnnouncementsHandler:  brd.ListAnnouncementsHandler,
		PostAnnouncementHandler:   brd.PostAnnouncementHandler,
		DeleteAnnouncementHandler: brd.DeleteAnnouncementHandler,
		FileReportHandler:         brd.FileReportHandler,
		ListReportsHandler:        brd.ListReportsHandler,
		UpdateReportStatusHandler: brd.UpdateReportStatusHandler,
	}
}
