package models

import "time"

// Room is a bookable campus space. Name is unique.
type Room struct {
	ID          string              `bson:"id" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Building    string              `bson:"building,omitempty" json:"building,omitempty"`
	Capacity    int                 `bson:"capacity" json:"capacity"`
	Features    []string            `bson:"features,omitempty" json:"features,omitempty"`
	Maintenance []MaintenanceWindow `bson:"maintenance" json:"maintenance"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}

// MaintenanceWindow blocks the room for every date from StartDate to EndDate inclusive.
type MaintenanceWindow struct {
	StartDate string `bson:"start_date" json:"startDate" binding:"required"` // "YYYY-MM-DD"
	EndDate   string `bson:"end_date" json:"endDate" binding:"required"`     // "YYYY-MM-DD"
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// RoomInput is the create/update payload for rooms.
type RoomInput struct {
	Name     string   `json:"name" binding:"required"`
	Building string   `json:"building"`
	Capacity int      `json:"capacity" binding:"gte=0"`
	Features []string `json:"features"`
}

// RoomAvailability lists one room's free slots on a date.
type RoomAvailability struct {
	RoomID   string     `json:"roomId"`
	RoomName string     `json:"roomName,omitempty"`
	Date     string     `json:"date"`
	Day      string     `json:"day"`
	Slots    []SlotView `json:"slots"`
}

// SlotView is a free slot as it crosses the API.
type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
