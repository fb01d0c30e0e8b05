package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"campusportal/config"
	"campusportal/database"
	courseRepo "campusportal/database/repository/course"
	roomRepo "campusportal/database/repository/room"
	timetableRepo "campusportal/database/repository/timetable"
	userRepoPkg "campusportal/database/repository/user"
	"campusportal/models"
	"campusportal/services/scheduling"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with rooms, courses, a clash-free weekly
// timetable and an admin account.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.Database()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, coll := range []string{"rooms", "courses", "timetables", "bookings"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	rooms := roomRepo.NewMongoRoomRepo(db)
	courses := courseRepo.NewMongoCourseRepo(db)
	timetables := timetableRepo.NewMongoTimetableRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)
	for _, r := range []interface{ EnsureIndexes(context.Context) error }{rooms, courses, timetables, users} {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to ensure indexes: %v", err)
		}
	}

	// Rooms.
	buildings := []string{"Science Block", "Arts Block", "Library"}
	var roomIDs []string
	for i := 1; i <= 6; i++ {
		room := &models.Room{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Room %d", 100+i),
			Building:    buildings[i%len(buildings)],
			Capacity:    20 + rand.Intn(8)*10,
			Maintenance: []models.MaintenanceWindow{},
		}
		if err := rooms.Create(ctx, room); err != nil {
			log.Fatalf("Failed to insert room %s: %v", room.Name, err)
		}
		roomIDs = append(roomIDs, room.ID)
	}

	// Courses.
	catalogue := []struct{ Code, Name, Dept string }{
		{"CS101", "Introduction to Programming", "Computing"},
		{"CS205", "Data Structures", "Computing"},
		{"MA110", "Calculus I", "Mathematics"},
		{"PH120", "Mechanics", "Physics"},
		{"EN101", "Academic Writing", "Languages"},
	}
	var courseIDs []string
	for _, c := range catalogue {
		course := &models.Course{ID: uuid.New().String(), Code: c.Code, Name: c.Name, Department: c.Dept}
		if err := courses.Create(ctx, course); err != nil {
			log.Fatalf("Failed to insert course %s: %v", c.Code, err)
		}
		courseIDs = append(courseIDs, course.ID)
	}

	// Two-hour classes from 08:00, rotated so no room holds two classes at once.
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	starts := []string{"08:00", "10:00", "13:00", "15:00"}
	inserted := 0
	for d, day := range days {
		for s, start := range starts {
			begin := scheduling.MustTimeOfDay(start)
			entry := &models.TimetableEntry{
				ID:        uuid.New().String(),
				RoomID:    roomIDs[(d+s)%len(roomIDs)],
				CourseID:  courseIDs[(d*len(starts)+s)%len(courseIDs)],
				Day:       day.String(),
				Start:     begin.String(),
				End:       (begin + 120).String(),
				CreatedBy: "seed",
			}
			if err := timetables.Create(ctx, entry); err != nil {
				log.Fatalf("Failed to insert timetable entry: %v", err)
			}
			inserted++
		}
	}

	// Admin account.
	hashed, err := bcrypt.GenerateFromPassword([]byte("$Password1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	admin := &models.User{
		ID:           uuid.New().String(),
		Name:         "Portal Admin",
		Email:        "admin@campus.local",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if existing, err := users.GetByEmail(ctx, admin.Email); err == nil && existing != nil {
		fmt.Println("Admin account already present, skipping")
	} else if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to insert admin: %v", err)
	}

	fmt.Printf("Seeded %d rooms, %d courses, %d timetable entries\n", len(roomIDs), len(courseIDs), inserted)
	if err := database.Disconnect(ctx); err != nil {
		log.Printf("disconnect: %v", err)
	}
}
