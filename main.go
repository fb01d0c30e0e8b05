package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusportal/config"
	"campusportal/cron"
	"campusportal/database"
	boardRepo "campusportal/database/repository/board"
	bookingRepo "campusportal/database/repository/booking"
	courseRepo "campusportal/database/repository/course"
	"campusportal/database/repository/memory"
	roomRepo "campusportal/database/repository/room"
	timetableRepo "campusportal/database/repository/timetable"
	userRepoPkg "campusportal/database/repository/user"
	"campusportal/handlers"
	"campusportal/routes"
	"campusportal/services"
	"campusportal/services/board"
	"campusportal/services/booking"
	"campusportal/services/course"
	"campusportal/services/notification"
	"campusportal/services/room"
	"campusportal/services/scheduling"
	"campusportal/services/timetable"
	"campusportal/services/user"
	"campusportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type repositories struct {
	users         userRepoPkg.UserRepository
	rooms         roomRepo.RoomRepository
	bookings      bookingRepo.BookingRepository
	timetables    timetableRepo.TimetableRepository
	courses       courseRepo.CourseRepository
	announcements boardRepo.AnnouncementRepository
	reports       boardRepo.ReportRepository
}

type indexed interface {
	EnsureIndexes(ctx context.Context) error
}

func mongoRepositories(ctx context.Context) (repositories, error) {
	db := database.Database()
	repos := repositories{
		users:         userRepoPkg.NewMongoUserRepo(db),
		rooms:         roomRepo.NewMongoRoomRepo(db),
		bookings:      bookingRepo.NewMongoBookingRepo(db),
		timetables:    timetableRepo.NewMongoTimetableRepo(db),
		courses:       courseRepo.NewMongoCourseRepo(db),
		announcements: boardRepo.NewMongoAnnouncementRepo(db),
		reports:       boardRepo.NewMongoReportRepo(db),
	}
	for _, r := range []indexed{repos.users, repos.rooms, repos.bookings, repos.timetables, repos.courses} {
		if err := r.EnsureIndexes(ctx); err != nil {
			return repos, err
		}
	}
	return repos, nil
}

func memoryRepositories() repositories {
	return repositories{
		users:         memory.NewUserRepo(),
		rooms:         memory.NewRoomRepo(),
		bookings:      memory.NewBookingRepo(),
		timetables:    memory.NewTimetableRepo(),
		courses:       memory.NewCourseRepo(),
		announcements: memory.NewAnnouncementRepo(),
		reports:       memory.NewReportRepo(),
	}
}

func dayWindow() (scheduling.DayWindow, error) {
	start, err := scheduling.ParseTimeOfDay(config.AppConfig.WorkdayStart)
	if err != nil {
		return scheduling.DayWindow{}, err
	}
	end, err := scheduling.ParseTimeOfDay(config.AppConfig.WorkdayEnd)
	if err != nil {
		return scheduling.DayWindow{}, err
	}
	w := scheduling.DayWindow{Start: start, End: end}
	return w, w.Validate()
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	window, err := dayWindow()
	if err != nil {
		logger.Fatal("main: invalid working hours", zap.Error(err))
	}

	// Storage and caches.
	var repos repositories
	inMemory := config.AppConfig.Storage == "memory"
	if inMemory {
		logger.Warn("main: using in-memory storage; data is lost on exit")
		repos = memoryRepositories()
	} else {
		database.InitDB()
		utils.InitRedis()
		indexCtx, cancel := context.WithTimeout(bgCtx, 30*time.Second)
		repos, err = mongoRepositories(indexCtx)
		cancel()
		if err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.Error(err))
		}
		utils.StartHealthMonitor(bgCtx, 30*time.Second, utils.RedisClients(), database.MongoClient)
	}

	var locker utils.RoomLocker = utils.NewLocalRoomLocker()
	if config.AppConfig.RoomLockMode == "redis" && utils.LockClient != nil {
		redisLocker := utils.NewRedisRoomLocker(utils.LockClient)
		redisLocker.OnLost = func(roomID string) {
			logger.Warn("Room lock expired before release", zap.String("roomID", roomID))
		}
		locker = redisLocker
	}

	// Notifications.
	var notifier notification.Notifier = notification.NopNotifier{}
	var worker *asynq.Server
	var queue *asynq.Client
	if config.AppConfig.MailEnabled {
		queue = asynq.NewClient(cron.QueueRedisOpt())
		notifier = notification.NewQueueNotifier(queue)

		var mailer notification.Mailer = notification.LogMailer{}
		if config.AppConfig.SMTPHost != "" {
			mailer = &notification.SMTPMailer{
				Host:     config.AppConfig.SMTPHost,
				Port:     config.AppConfig.SMTPPort,
				Username: config.AppConfig.SMTPUsername,
				Password: config.AppConfig.SMTPPassword,
				From:     config.AppConfig.MailFrom,
			}
		}
		worker = cron.InitEmailWorker(bgCtx, mailer)
	}
	notificationService, err := notification.NewDefaultNotificationService(notifier, repos.users)
	if err != nil {
		logger.Fatal("main: notification service", zap.Error(err))
	}

	// Services.
	loader := &services.ScheduleLoader{
		Rooms:      repos.rooms,
		Bookings:   repos.bookings,
		Timetables: repos.timetables,
		Courses:    repos.courses,
	}
	userService := user.NewDefaultUserService(repos.users, utils.GetAuthCacheClient(),
		time.Duration(config.AppConfig.TokenTTLHours)*time.Hour)
	roomService := room.NewDefaultRoomService(repos.rooms)
	availabilityService := &services.DefaultAvailabilityService{
		Loader:      loader,
		Window:      window,
		SlotMinutes: config.AppConfig.SlotMinutes,
	}
	bookingService := booking.NewDefaultBookingService(repos.bookings, loader, locker, notificationService)
	timetableService := timetable.NewDefaultTimetableService(repos.timetables, loader, locker)
	courseService := course.NewDefaultCourseService(repos.courses)
	boardService := board.NewDefaultBoardService(repos.announcements, repos.reports, repos.rooms)

	// Handlers.
	handlerBundle := handlers.NewHandlerBundle(repos.users, config.AppConfig.MaxRequestsPerMin,
		handlers.NewUserHandler(userService, bookingService),
		handlers.NewRoomHandler(roomService, availabilityService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewTimetableHandler(timetableService),
		handlers.NewCourseHandler(courseService),
		handlers.NewBoardHandler(boardService),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stopBackground()
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		_ = queue.Close()
	}
	if !inMemory {
		if err := database.Disconnect(ctx); err != nil {
			logger.Sugar().Warnf("main: mongo disconnect: %v", err)
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
