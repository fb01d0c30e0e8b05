package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campusportal/database/repository"
	boardRepo "campusportal/database/repository/board"
	roomRepo "campusportal/database/repository/room"
	"campusportal/models"
	"campusportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BoardService covers announcements and user-filed maintenance reports.
type BoardService interface {
	PostAnnouncement(ctx context.Context, authorID string, in models.AnnouncementInput) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context, role string) ([]models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error

	FileReport(ctx context.Context, reporterID string, in models.ReportInput) (*models.MaintenanceReport, error)
	ListReports(ctx context.Context, status string) ([]models.MaintenanceReport, error)
	UpdateReportStatus(ctx context.Context, id, status string) (*models.MaintenanceReport, error)
}

// DefaultBoardService is the production implementation. Resolving a report does
// not touch the room's maintenance windows.
type DefaultBoardService struct {
	Announcements boardRepo.AnnouncementRepository
	Reports       boardRepo.ReportRepository
	Rooms         roomRepo.RoomRepository
}

func NewDefaultBoardService(a boardRepo.AnnouncementRepository, r boardRepo.ReportRepository, rooms roomRepo.RoomRepository) *DefaultBoardService {
	return &DefaultBoardService{Announcements: a, Reports: r, Rooms: rooms}
}

func (s *DefaultBoardService) PostAnnouncement(ctx context.Context, authorID string, in models.AnnouncementInput) (*models.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", utils.ErrInvalidInput)
	}
	if in.Audience != "" && !models.ValidRole(in.Audience) {
		return nil, fmt.Errorf("%w: unknown audience %q", utils.ErrInvalidInput, in.Audience)
	}
	a := &models.Announcement{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(in.Title),
		Body:     in.Body,
		Audience: in.Audience,
		AuthorID: authorID,
	}
	if err := s.Announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnnouncements shows everyone the general notices plus those for their role.
// Admins see all of them.
func (s *DefaultBoardService) ListAnnouncements(ctx context.Context, role string) ([]models.Announcement, error) {
	if role == models.RoleAdmin {
		role = ""
	}
	return s.Announcements.List(ctx, role)
}

func (s *DefaultBoardService) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.Announcements.Delete(ctx, id)
}

func (s *DefaultBoardService) FileReport(ctx context.Context, reporterID string, in models.ReportInput) (*models.MaintenanceReport, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", utils.ErrInvalidInput)
	}
	if _, err := s.Rooms.GetByID(ctx, in.RoomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: room %s does not exist", utils.ErrInvalidInput, in.RoomID)
		}
		return nil, err
	}
	rep := &models.MaintenanceReport{
		ID:          uuid.New().String(),
		RoomID:      in.RoomID,
		ReporterID:  reporterID,
		Description: strings.TrimSpace(in.Description),
		Status:      models.ReportOpen,
	}
	if err := s.Reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Maintenance report filed", zap.String("reportID", rep.ID), zap.String("roomID", rep.RoomID))
	return rep, nil
}

func (s *DefaultBoardService) ListReports(ctx context.Context, status string) ([]models.MaintenanceReport, error) {
	return s.Reports.List(ctx, status)
}

func (s *DefaultBoardService) UpdateReportStatus(ctx context.Context, id, status string) (*models.MaintenanceReport, error) {
	rep, err := s.Reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.ValidReportTransition(rep.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", utils.ErrInvalidTransition, rep.Status, status)
	}
	if err := s.Reports.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	rep.Status = status
	return rep, nil
}
