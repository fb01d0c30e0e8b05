package services

import (
	"context"
	"fmt"

	"campusportal/models"
	"campusportal/services/scheduling"
)

// AvailabilityService answers "which slots are free" for one room or every room.
type AvailabilityService interface {
	GetRoomAvailability(ctx context.Context, roomID, date string, slotMinutes int) (*models.RoomAvailability, error)
	GetAllAvailability(ctx context.Context, date string, slotMinutes int) ([]models.RoomAvailability, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Loader *ScheduleLoader
	Window scheduling.DayWindow
	// SlotMinutes applies when a request does not name a slot size.
	SlotMinutes int
}

func (s *DefaultAvailabilityService) slotSize(requested int) int {
	if requested != 0 {
		return requested
	}
	return s.SlotMinutes
}

func (s *DefaultAvailabilityService) GetRoomAvailability(ctx context.Context, roomID, date string, slotMinutes int) (*models.RoomAvailability, error) {
	d, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}
	room, sched, err := s.Loader.Load(ctx, roomID, models.BookingFilter{Date: d.String()})
	if err != nil {
		return nil, err
	}
	slots, err := scheduling.AvailableSlots(sched, d, s.slotSize(slotMinutes), s.Window)
	if err != nil {
		return nil, err
	}
	return &models.RoomAvailability{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     d.String(),
		Day:      d.Weekday().String(),
		Slots:    models.SlotViews(slots),
	}, nil
}

func (s *DefaultAvailabilityService) GetAllAvailability(ctx context.Context, date string, slotMinutes int) ([]models.RoomAvailability, error) {
	d, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}
	rooms, schedules, err := s.Loader.LoadAll(ctx, d)
	if err != nil {
		return nil, err
	}
	results, err := scheduling.AvailableSlotsForRooms(schedules, d, s.slotSize(slotMinutes), s.Window)
	if err != nil {
		return nil, err
	}
	if len(results) != len(rooms) {
		return nil, fmt.Errorf("availability computed for %d of %d rooms", len(results), len(rooms))
	}

	out := make([]models.RoomAvailability, 0, len(results))
	for i, r := range results {
		out = append(out, models.RoomAvailability{
			RoomID:   r.RoomID,
			RoomName: rooms[i].Name,
			Date:     d.String(),
			Day:      d.Weekday().String(),
			Slots:    models.SlotViews(r.Slots),
		})
	}
	return out, nil
}
