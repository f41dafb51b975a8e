package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"geotagger-be/internal/config"
	"geotagger-be/internal/dto"
	"geotagger-be/internal/entity"
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/repository/specification"
	"geotagger-be/internal/repository/unitofwork"
	"geotagger-be/pkg/geo"
	"geotagger-be/pkg/satellite"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker"
)

// ErrSatelliteUnavailable is returned when the simulated downlink fails or
// the circuit breaker is open.
var ErrSatelliteUnavailable = errors.New("satellite link unavailable")

// ErrFolderNotFound is returned when an operation references a folder that
// does not exist.
var ErrFolderNotFound = errors.New("folder not found")

type ISatelliteService interface {
	// Summary returns the scalar environmental snapshot for a folder,
	// fetching and persisting it when none is stored yet.
	Summary(ctx context.Context, folderId uuid.UUID) (*dto.SatelliteSummaryResponse, error)

	// Grid returns a transient synthetic data grid centered on a coordinate.
	Grid(ctx context.Context, req *dto.GridRequest) (*dto.GridResponse, error)

	// Heatmap renders a grid through a gradient scheme into a PNG raster
	// plus the geographic quad it drapes over.
	Heatmap(ctx context.Context, req *dto.HeatmapRequest) (*dto.HeatmapResponse, error)

	// RefreshSummaries re-fetches the snapshot of every folder. Individual
	// failures are logged and skipped.
	RefreshSummaries(ctx context.Context) error
}

type satelliteService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.SatelliteConfig
	breaker    *gobreaker.CircuitBreaker
	cache      *cache.Cache
	logger     logger.ILogger
	rng        func() float64
}

func NewSatelliteService(
	uowFactory unitofwork.RepositoryFactory,
	cfg config.SatelliteConfig,
	log logger.ILogger,
) ISatelliteService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "satellite-fetch",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &satelliteService{
		uowFactory: uowFactory,
		cfg:        cfg,
		breaker:    breaker,
		cache:      cache.New(cfg.CacheTTL, 10*time.Minute),
		logger:     log,
		rng:        rand.Float64,
	}
}

func (s *satelliteService) Summary(ctx context.Context, folderId uuid.UUID) (*dto.SatelliteSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: folderId})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	if folder.SatelliteData != nil {
		return summaryToDTO(folder.SatelliteData), nil
	}

	summary, err := s.fetchSummary(ctx, folder.Anchor())
	if err != nil {
		return nil, err
	}

	folder.SatelliteData = summary
	now := time.Now()
	folder.UpdatedAt = &now
	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	return summaryToDTO(summary), nil
}

func (s *satelliteService) Grid(ctx context.Context, req *dto.GridRequest) (*dto.GridResponse, error) {
	scheme := satellite.Scheme(req.Scheme)
	gridSize := req.GridSize
	if gridSize <= 0 {
		gridSize = satellite.DefaultGridSize
	}

	anchor := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	grid := satellite.Generate(anchor, satellite.ParamsFor(scheme), gridSize)
	min, max := grid.MinMax()

	return &dto.GridResponse{
		Values: grid.Values,
		Bounds: boundsToDTO(grid.Bounds),
		Min:    min,
		Max:    max,
		Mean:   grid.Mean(),
	}, nil
}

func (s *satelliteService) Heatmap(ctx context.Context, req *dto.HeatmapRequest) (*dto.HeatmapResponse, error) {
	scheme := satellite.Scheme(req.Scheme)
	gridSize := req.GridSize
	if gridSize <= 0 {
		gridSize = satellite.DefaultGridSize
	}

	anchor := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	grid := satellite.Generate(anchor, satellite.ParamsFor(scheme), gridSize)

	opts := []satellite.RasterOption{}
	if req.CellScale > 0 {
		opts = append(opts, satellite.WithCellScale(req.CellScale))
	}
	heatmap := satellite.Rasterize(grid, scheme, opts...)

	png, err := heatmap.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("encode heatmap: %w", err)
	}

	bounds := heatmap.Image.Bounds()
	return &dto.HeatmapResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(png),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Bounds:      boundsToDTO(heatmap.Bounds),
		Quad:        heatmap.QuadCorners(),
	}, nil
}

func (s *satelliteService) RefreshSummaries(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return err
	}

	for _, folder := range folders {
		summary, err := s.fetchSummary(ctx, folder.Anchor())
		if err != nil {
			s.logger.Warn("satellite", "summary refresh failed for folder", map[string]interface{}{
				"folder_id": folder.Id.String(),
				"error":     err.Error(),
			})
			continue
		}
		folder.SatelliteData = summary
		now := time.Now()
		folder.UpdatedAt = &now
		if err := uow.FolderRepository().Update(ctx, folder); err != nil {
			return err
		}
	}
	return nil
}

// fetchSummary simulates a satellite downlink: a latency window that honors
// context cancellation, a transient failure rate, then values derived from
// the deterministic grids so repeat fetches for one anchor agree.
func (s *satelliteService) fetchSummary(ctx context.Context, anchor geo.Coordinate) (*entity.SatelliteSummary, error) {
	cacheKey := fmt.Sprintf("summary:%.6f,%.6f", anchor.Latitude, anchor.Longitude)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*entity.SatelliteSummary), nil
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.FetchLatency):
		}

		if s.rng() < s.cfg.FailureRate {
			return nil, ErrSatelliteUnavailable
		}

		ndvi := satellite.Generate(anchor, satellite.Vegetation, satellite.DefaultGridSize).Mean()
		moisture := satellite.Generate(anchor, satellite.SoilMoisture, satellite.DefaultGridSize).Mean()
		temperature := satellite.Generate(anchor, satellite.Temperature, satellite.DefaultGridSize).Mean()

		return &entity.SatelliteSummary{
			Ndvi:               ndvi,
			SoilMoisture:       moisture,
			TemperatureCelsius: temperature,
			FetchedAt:          time.Now(),
		}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open", ErrSatelliteUnavailable)
		}
		return nil, err
	}

	summary := result.(*entity.SatelliteSummary)
	s.cache.Set(cacheKey, summary, cache.DefaultExpiration)
	return summary, nil
}

func summaryToDTO(s *entity.SatelliteSummary) *dto.SatelliteSummaryResponse {
	return &dto.SatelliteSummaryResponse{
		Ndvi:               s.Ndvi,
		SoilMoisture:       s.SoilMoisture,
		TemperatureCelsius: s.TemperatureCelsius,
		FetchedAt:          s.FetchedAt,
	}
}

func boundsToDTO(b satellite.Bounds) dto.BoundsResponse {
	return dto.BoundsResponse{
		North: b.North,
		South: b.South,
		East:  b.East,
		West:  b.West,
	}
}
