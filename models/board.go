package models

import "time"

// Announcement is a notice posted by an administrator.
type Announcement struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Audience  string    `bson:"audience,omitempty" json:"audience,omitempty"` // empty, or a role
	AuthorID  string    `bson:"author_id" json:"authorId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type AnnouncementInput struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience" binding:"omitempty,oneof=student lecturer admin"`
}

const (
	ReportOpen       = "open"
	ReportInProgress = "in_progress"
	ReportResolved   = "resolved"
)

// MaintenanceReport is a fault a user has reported against a room.
type MaintenanceReport struct {
	ID          string    `bson:"id" json:"id"`
	RoomID      string    `bson:"room_id" json:"roomId"`
	ReporterID  string    `bson:"reporter_id" json:"reporterId"`
	Description string    `bson:"description" json:"description"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

type ReportInput struct {
	RoomID      string `json:"roomId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type ReportStatusInput struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved"`
}

// ValidReportTransition allows open -> in_progress -> resolved, and open -> resolved.
func ValidReportTransition(from, to string) bool {
	switch from {
	case ReportOpen:
		return to == ReportInProgress || to == ReportResolved
	case ReportInProgress:
		return to == ReportResolved
	}
	return false
}
