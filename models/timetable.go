package models

import "time"

// TimetableEntry is a weekly class slot in a room.
type TimetableEntry struct {
	ID         string    `bson:"id" json:"id"`
	RoomID     string    `bson:"room_id" json:"roomId"`
	CourseID   string    `bson:"course_id" json:"courseId"`
	Day        string    `bson:"day" json:"day"`     // "Monday"
	Start      string    `bson:"start" json:"start"` // "HH:mm"
	End        string    `bson:"end" json:"end"`     // "HH:mm"
	LecturerID string    `bson:"lecturer_id,omitempty" json:"lecturerId,omitempty"`
	CreatedBy  string    `bson:"created_by" json:"createdBy"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// TimetableInput is the create/update payload.
type TimetableInput struct {
	RoomID     string `json:"roomId" binding:"required"`
	CourseID   string `json:"courseId" binding:"required"`
	Day        string `json:"day" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
	LecturerID string `json:"lecturerId"`
}

// TimetableFilter narrows the timetable listing. Empty fields match everything.
type TimetableFilter struct {
	RoomID   string `form:"roomId"`
	CourseID string `form:"courseId"`
	Day      string `form:"day"`
}

// TimetableView is an entry with its course link resolved for display.
type TimetableView struct {
	TimetableEntry `bson:",inline"`
	CourseCode     string `json:"courseCode,omitempty"`
	CourseName     string `json:"courseName,omitempty"`
	RoomName       string `json:"roomName,omitempty"`
	CourseResolved bool   `json:"courseResolved"`
}

// TimetableConflict is a pair of entries that hold the same room at overlapping times.
type TimetableConflict struct {
	RoomID string        `json:"roomId"`
	Day    string        `json:"day"`
	First  TimetableView `json:"first"`
	Second TimetableView `json:"second"`
}

// TimetableReport is the admin listing: raw entries alongside detected conflicts.
type TimetableReport struct {
	Timetables []TimetableView     `json:"timetables"`
	Conflicts  []TimetableConflict `json:"conflicts"`
}
