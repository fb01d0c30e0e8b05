package course

import (
	"context"
	"fmt"
	"strings"

	courseRepo "campusportal/database/repository/course"
	"campusportal/models"
	"campusportal/utils"

	"github.com/google/uuid"
)

type CourseService interface {
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, in models.CourseInput) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
}

// DefaultCourseService is the production implementation. Deleting a course leaves
// its timetable entries in place; they show up as unresolved.
type DefaultCourseService struct {
	Repo courseRepo.CourseRepository
}

func NewDefaultCourseService(repo courseRepo.CourseRepository) *DefaultCourseService {
	return &DefaultCourseService{Repo: repo}
}

func normalise(in models.CourseInput) (models.CourseInput, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" {
		return in, fmt.Errorf("%w: course code and name are required", utils.ErrInvalidInput)
	}
	return in, nil
}

func (s *DefaultCourseService) CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	in, err := normalise(in)
	if err != nil {
		return nil, err
	}
	c := &models.Course{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Name:       in.Name,
		Department: in.Department,
		LecturerID: in.LecturerID,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCourseService) UpdateCourse(ctx context.Context, id string, in models.CourseInput) (*models.Course, error) {
	in, err := normalise(in)
	if err != nil {
		return nil, err
	}
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Code, c.Name, c.Department, c.LecturerID = in.Code, in.Name, in.Department, in.LecturerID
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultCourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCourseService) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.GetAll(ctx)
}
