package scheduler

import (
	"context"
	"time"

	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/service"

	"github.com/go-co-op/gocron"
)

// Scheduler periodically refreshes every folder's satellite summary so the
// stored snapshots do not go stale between visits.
type Scheduler struct {
	scheduler        *gocron.Scheduler
	satelliteService service.ISatelliteService
	interval         time.Duration
	logger           logger.ILogger
}

func New(satelliteService service.ISatelliteService, interval time.Duration, log logger.ILogger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler:        s,
		satelliteService: satelliteService,
		interval:         interval,
		logger:           log,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		s.logger.Info("scheduler", "running satellite summary refresh", nil)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.satelliteService.RefreshSummaries(ctx); err != nil {
			s.logger.Warn("scheduler", "satellite summary refresh failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		s.logger.Info("scheduler", "satellite summary refresh completed", nil)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
