package models

import "time"

// Course is a taught unit that timetable entries refer to. Code is unique.
type Course struct {
	ID         string    `bson:"id" json:"id"`
	Code       string    `bson:"code" json:"code"`
	Name       string    `bson:"name" json:"name"`
	Department string    `bson:"department,omitempty" json:"department,omitempty"`
	LecturerID string    `bson:"lecturer_id,omitempty" json:"lecturerId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

type CourseInput struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
	LecturerID string `json:"lecturerId"`
}
