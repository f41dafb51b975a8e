package main

import (
	"context"
	"log"

	"geotagger-be/internal/bootstrap"
	"geotagger-be/internal/config"
	"geotagger-be/internal/server"
	"geotagger-be/internal/tracer"
	"geotagger-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Jobs
	if err := container.Scheduler.Start(); err != nil {
		log.Printf("Background: failed to start satellite refresh job: %v", err)
	}
	defer container.Scheduler.Stop()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
