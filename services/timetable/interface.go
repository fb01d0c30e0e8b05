package timetable

import (
	"context"

	timetableRepo "campusportal/database/repository/timetable"
	"campusportal/models"
	"campusportal/services"
	"campusportal/utils"
)

// TimetableService maintains weekly class slots and reports clashes among them.
type TimetableService interface {
	CreateEntry(ctx context.Context, actorID string, in models.TimetableInput) (*models.TimetableEntry, error)
	UpdateEntry(ctx context.Context, actorID, actorRole, id string, in models.TimetableInput) (*models.TimetableEntry, error)
	DeleteEntry(ctx context.Context, actorID, actorRole, id string) error
	GetReport(ctx context.Context, filter models.TimetableFilter) (*models.TimetableReport, error)
}

// DefaultTimetableService is the production implementation. Writes hold the
// room lock across the recurring admission check, as bookings do.
type DefaultTimetableService struct {
	Repo   timetableRepo.TimetableRepository
	Loader *services.ScheduleLoader
	Locker utils.RoomLocker
}

func NewDefaultTimetableService(repo timetableRepo.TimetableRepository, loader *services.ScheduleLoader, locker utils.RoomLocker) *DefaultTimetableService {
	return &DefaultTimetableService{Repo: repo, Loader: loader, Locker: locker}
}
