package bootstrap

import (
	"context"
	"log"

	"geotagger-be/internal/config"
	"geotagger-be/internal/controller"
	"geotagger-be/internal/handler"
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/repository/unitofwork"
	"geotagger-be/internal/scheduler"
	"geotagger-be/internal/service"
	"geotagger-be/internal/websocket"
	pktNats "geotagger-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FolderController    controller.IFolderController
	NoteController      controller.INoteController
	SatelliteController controller.ISatelliteController
	MissionController   controller.IMissionController

	// WebSocket
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
	Notifier      *websocket.Notifier

	// Background jobs (exposed for main.go to run)
	Scheduler *scheduler.Scheduler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	busService := service.NewBusService(pubSub)

	// 2.5 Infrastructure
	// NATS (mirrors events for the presentation layer; optional)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (folder-creation locks + websocket cluster fan-out; optional)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	geocodingService := service.NewGeocodingService(cfg.Keys.GoogleGeocoding, sysLogger)
	satelliteService := service.NewSatelliteService(uowFactory, cfg.Satellite, sysLogger)
	folderService := service.NewFolderService(
		uowFactory,
		geocodingService,
		busService,
		natsPub,
		rdb,
		cfg.App.ProximityMeters,
		sysLogger,
	)
	noteService := service.NewNoteService(uowFactory, folderService)
	missionService := service.NewMissionService(uowFactory, busService, natsPub, sysLogger)
	streamService := service.NewStreamService(folderService, missionService, sysLogger)

	// 4. Event fan-out to connected clients
	notifier := websocket.NewNotifier(wsHub, busService, wsLogger)
	if err := notifier.Run(context.Background()); err != nil {
		log.Printf("[WARN] Failed to start websocket notifier: %v", err)
	}

	// 5. Background refresh job
	refreshJob := scheduler.New(satelliteService, cfg.Satellite.RefreshInterval, sysLogger)

	return &Container{
		FolderController:    controller.NewFolderController(folderService),
		NoteController:      controller.NewNoteController(noteService),
		SatelliteController: controller.NewSatelliteController(satelliteService),
		MissionController:   controller.NewMissionController(missionService),

		StreamHandler: handler.NewStreamHandler(wsHub, streamService, wsLogger),
		WebSocketHub:  wsHub,
		Notifier:      notifier,

		Scheduler: refreshJob,

		Logger: sysLogger,
	}
}
