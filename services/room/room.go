package room

import (
	"context"
	"fmt"
	"strings"

	roomRepo "campusportal/database/repository/room"
	"campusportal/models"
	"campusportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, in models.RoomInput) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, in models.RoomInput) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	GetAllRooms(ctx context.Context) ([]models.Room, error)

	// Maintenance
	AddMaintenance(ctx context.Context, id string, w models.MaintenanceWindow) (*models.Room, error)
	ReplaceMaintenance(ctx context.Context, id string, windows []models.MaintenanceWindow) (*models.Room, error)
}

// DefaultRoomService is the production implementation.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

func NewDefaultRoomService(repo roomRepo.RoomRepository) *DefaultRoomService {
	return &DefaultRoomService{Repo: repo}
}

func cleanInput(in models.RoomInput) (models.RoomInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: room name is required", utils.ErrInvalidInput)
	}
	if in.Capacity < 0 {
		return in, fmt.Errorf("%w: capacity cannot be negative", utils.ErrInvalidInput)
	}
	return in, nil
}

func (s *DefaultRoomService) CreateRoom(ctx context.Context, in models.RoomInput) (*models.Room, error) {
	in, err := cleanInput(in)
	if err != nil {
		return nil, err
	}
	room := &models.Room{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Building:    in.Building,
		Capacity:    in.Capacity,
		Features:    in.Features,
		Maintenance: []models.MaintenanceWindow{},
	}
	if err := s.Repo.Create(ctx, room); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Room created", zap.String("roomID", room.ID), zap.String("name", room.Name))
	return room, nil
}

func (s *DefaultRoomService) UpdateRoom(ctx context.Context, id string, in models.RoomInput) (*models.Room, error) {
	in, err := cleanInput(in)
	if err != nil {
		return nil, err
	}
	room, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Name, room.Building, room.Capacity, room.Features = in.Name, in.Building, in.Capacity, in.Features
	if err := s.Repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultRoomService) DeleteRoom(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultRoomService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultRoomService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	return s.Repo.GetAll(ctx)
}

// AddMaintenance appends a window after checking its dates parse and are ordered.
func (s *DefaultRoomService) AddMaintenance(ctx context.Context, id string, w models.MaintenanceWindow) (*models.Room, error) {
	if _, err := w.Schedule(id); err != nil {
		return nil, err
	}
	if err := s.Repo.AddMaintenance(ctx, id, w); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Maintenance scheduled",
		zap.String("roomID", id), zap.String("from", w.StartDate), zap.String("to", w.EndDate))
	return s.Repo.GetByID(ctx, id)
}

// ReplaceMaintenance swaps the whole list; an empty list clears it.
func (s *DefaultRoomService) ReplaceMaintenance(ctx context.Context, id string, windows []models.MaintenanceWindow) (*models.Room, error) {
	if windows == nil {
		windows = []models.MaintenanceWindow{}
	}
	for _, w := range windows {
		if _, err := w.Schedule(id); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.ReplaceMaintenance(ctx, id, windows); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}
