package boardRepo

import (
	"context"

	"campusportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	// List returns announcements newest first. A non-empty audience also matches
	// announcements addressed to everyone.
	List(ctx context.Context, audience string) ([]models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type ReportRepository interface {
	Create(ctx context.Context, r *models.MaintenanceReport) error
	GetByID(ctx context.Context, id string) (*models.MaintenanceReport, error)
	List(ctx context.Context, status string) ([]models.MaintenanceReport, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoAnnouncementRepo struct {
	coll *mongo.Collection
}

type mongoReportRepo struct {
	coll *mongo.Collection
}

func NewMongoAnnouncementRepo(db *mongo.Database) AnnouncementRepository {
	return &mongoAnnouncementRepo{coll: db.Collection("announcements")}
}

func NewMongoReportRepo(db *mongo.Database) ReportRepository {
	return &mongoReportRepo{coll: db.Collection("maintenance_reports")}
}
