package timetable

import (
	"context"
	"errors"
	"fmt"

	"campusportal/database/repository"
	"campusportal/models"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// parseInput normalises the day name and times and checks the course exists.
func (s *DefaultTimetableService) parseInput(ctx context.Context, in models.TimetableInput) (scheduling.TimeInterval, error) {
	day, err := scheduling.ParseWeekday(in.Day)
	if err != nil {
		return scheduling.TimeInterval{}, err
	}
	iv, err := scheduling.NewInterval(day, in.Start, in.End)
	if err != nil {
		return scheduling.TimeInterval{}, err
	}
	if _, err := s.Loader.Courses.GetByID(ctx, in.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return scheduling.TimeInterval{}, fmt.Errorf("%w: course %s does not exist", utils.ErrInvalidInput, in.CourseID)
		}
		return scheduling.TimeInterval{}, err
	}
	return iv, nil
}

func (s *DefaultTimetableService) CreateEntry(ctx context.Context, actorID string, in models.TimetableInput) (*models.TimetableEntry, error) {
	iv, err := s.parseInput(ctx, in)
	if err != nil {
		return nil, err
	}
	entry := &models.TimetableEntry{
		ID:         uuid.New().String(),
		RoomID:     in.RoomID,
		CourseID:   in.CourseID,
		Day:        iv.Day.String(),
		Start:      iv.Start.String(),
		End:        iv.End.String(),
		LecturerID: in.LecturerID,
		CreatedBy:  actorID,
	}

	err = s.admitAndWrite(ctx, scheduling.RecurringCandidate{RoomID: in.RoomID, Interval: iv}, func() error {
		return s.Repo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Timetable entry created", zap.String("entryID", entry.ID), zap.String("roomID", entry.RoomID))
	return entry, nil
}

// UpdateEntry rewrites an entry. Lecturers may only edit entries they created.
func (s *DefaultTimetableService) UpdateEntry(ctx context.Context, actorID, actorRole, id string, in models.TimetableInput) (*models.TimetableEntry, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canModify(actorID, actorRole, existing); err != nil {
		return nil, err
	}
	iv, err := s.parseInput(ctx, in)
	if err != nil {
		return nil, err
	}

	entry := *existing
	entry.RoomID = in.RoomID
	entry.CourseID = in.CourseID
	entry.Day = iv.Day.String()
	entry.Start = iv.Start.String()
	entry.End = iv.End.String()
	entry.LecturerID = in.LecturerID

	candidate := scheduling.RecurringCandidate{RoomID: in.RoomID, Interval: iv, ExcludeEntryID: id}
	err = s.admitAndWrite(ctx, candidate, func() error {
		return s.Repo.Update(ctx, &entry)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Timetable entry updated", zap.String("entryID", id), zap.String("roomID", entry.RoomID))
	return &entry, nil
}

func (s *DefaultTimetableService) DeleteEntry(ctx context.Context, actorID, actorRole, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canModify(actorID, actorRole, existing); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func canModify(actorID, actorRole string, e *models.TimetableEntry) error {
	if actorRole == models.RoleAdmin || e.CreatedBy == actorID {
		return nil
	}
	return fmt.Errorf("%w: entry belongs to another lecturer", utils.ErrForbidden)
}

// admitAndWrite checks the weekly slot against bookings from today on and the
// room's other entries, then runs write while still holding the room lock.
func (s *DefaultTimetableService) admitAndWrite(ctx context.Context, c scheduling.RecurringCandidate, write func() error) error {
	unlock, err := s.Locker.Lock(ctx, c.RoomID)
	if err != nil {
		return fmt.Errorf("room is busy, please retry: %w", err)
	}
	defer unlock()

	c.From = s.Loader.Today()
	_, sched, err := s.Loader.Load(ctx, c.RoomID, models.BookingFilter{FromDate: c.From.String()})
	if err != nil {
		return err
	}

	decision, err := scheduling.CheckRecurringAdmission(c, sched.Existing)
	if err != nil {
		return err
	}
	if !decision.Admitted {
		utils.GetLogger().Info("Timetable entry rejected",
			zap.String("roomID", c.RoomID), zap.String("slot", c.Interval.String()),
			zap.String("reason", string(decision.Reason)), zap.String("conflictWith", decision.ConflictWith))
		return decision.Err()
	}
	return write()
}
