package handlers

import (
	"net/http"
	"strconv"

	"campusportal/models"
	"campusportal/services"
	"campusportal/services/room"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	RoomService         room.RoomService
	AvailabilityService services.AvailabilityService
}

func NewRoomHandler(roomSvc room.RoomService, availSvc services.AvailabilityService) *RoomHandler {
	return &RoomHandler{RoomService: roomSvc, AvailabilityService: availSvc}
}

func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.RoomService.GetAllRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	r, err := h.RoomService.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var req models.RoomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	r, err := h.RoomService.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var req models.RoomInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	r, err := h.RoomService.UpdateRoom(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.RoomService.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

// AddMaintenanceHandler handles POST /api/rooms/:id/maintenance.
func (h *RoomHandler) AddMaintenanceHandler(c *gin.Context) {
	var req models.MaintenanceWindow
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	r, err := h.RoomService.AddMaintenance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ReplaceMaintenanceHandler handles PUT /api/rooms/:id/maintenance with a JSON array.
func (h *RoomHandler) ReplaceMaintenanceHandler(c *gin.Context) {
	var req []models.MaintenanceWindow
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	r, err := h.RoomService.ReplaceMaintenance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func slotMinutesParam(c *gin.Context) (int, bool) {
	raw := c.Query("slotMinutes")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": "slotMinutes must be an integer"})
		return 0, false
	}
	return n, true
}

// RoomAvailabilityHandler handles GET /api/rooms/:id/available?date=&slotMinutes=.
func (h *RoomHandler) RoomAvailabilityHandler(c *gin.Context) {
	slot, ok := slotMinutesParam(c)
	if !ok {
		return
	}
	avail, err := h.AvailabilityService.GetRoomAvailability(c.Request.Context(), c.Param("id"), c.Query("date"), slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// AllAvailabilityHandler handles GET /api/rooms/available?date=&slotMinutes=.
func (h *RoomHandler) AllAvailabilityHandler(c *gin.Context) {
	slot, ok := slotMinutesParam(c)
	if !ok {
		return
	}
	avail, err := h.AvailabilityService.GetAllAvailability(c.Request.Context(), c.Query("date"), slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}
