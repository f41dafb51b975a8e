package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"geotagger-be/internal/config"
	"geotagger-be/internal/dto"
	"geotagger-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSatelliteFixture(t *testing.T, failureRate float64) (ISatelliteService, IFolderService) {
	t.Helper()
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	log := newTestLogger(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus := NewBusService(pubSub)
	geocoding := NewGeocodingService("", log)
	folderSvc := NewFolderService(uowFactory, geocoding, bus, nil, nil, 50, log)
	satSvc := NewSatelliteService(uowFactory, config.SatelliteConfig{
		FetchLatency: time.Millisecond,
		FailureRate:  failureRate,
		CacheTTL:     time.Minute,
	}, log)
	return satSvc, folderSvc
}

func TestSummaryUnknownFolder(t *testing.T) {
	satSvc, _ := newSatelliteFixture(t, 0)

	_, err := satSvc.Summary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestSummaryFetchesAndPersists(t *testing.T) {
	satSvc, folderSvc := newSatelliteFixture(t, 0)
	ctx := context.Background()

	folder, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)

	summary, err := satSvc.Summary(ctx, folder.Id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, summary.Ndvi, 0.0)
	assert.LessOrEqual(t, summary.Ndvi, 1.0)
	assert.GreaterOrEqual(t, summary.SoilMoisture, 0.0)
	assert.LessOrEqual(t, summary.SoilMoisture, 100.0)
	assert.False(t, summary.FetchedAt.IsZero())

	// Second read serves the stored snapshot.
	again, err := satSvc.Summary(ctx, folder.Id)
	require.NoError(t, err)
	assert.Equal(t, summary.Ndvi, again.Ndvi)

	shown, err := folderSvc.Show(ctx, folder.Id)
	require.NoError(t, err)
	require.NotNil(t, shown.SatelliteData)
	assert.Equal(t, summary.Ndvi, shown.SatelliteData.Ndvi)
}

func TestSummaryPropagatesDownlinkFailure(t *testing.T) {
	satSvc, folderSvc := newSatelliteFixture(t, 1.0)
	ctx := context.Background()

	folder, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 10, Longitude: 20})
	require.NoError(t, err)

	_, err = satSvc.Summary(ctx, folder.Id)
	assert.ErrorIs(t, err, ErrSatelliteUnavailable)
}

func TestSummaryHonorsContextCancellation(t *testing.T) {
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	log := newTestLogger(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus := NewBusService(pubSub)
	folderSvc := NewFolderService(uowFactory, NewGeocodingService("", log), bus, nil, nil, 50, log)
	satSvc := NewSatelliteService(uowFactory, config.SatelliteConfig{
		FetchLatency: time.Minute, // far beyond the test deadline
		CacheTTL:     time.Minute,
	}, log)

	folder, err := folderSvc.Resolve(context.Background(), &dto.ResolveFolderRequest{Latitude: 1, Longitude: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = satSvc.Summary(ctx, folder.Id)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGridIsDeterministicPerCoordinate(t *testing.T) {
	satSvc, _ := newSatelliteFixture(t, 0)
	ctx := context.Background()

	req := &dto.GridRequest{Latitude: 48.8566, Longitude: 2.3522, Scheme: "vegetation"}
	first, err := satSvc.Grid(ctx, req)
	require.NoError(t, err)
	second, err := satSvc.Grid(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.Bounds, second.Bounds)
	assert.Len(t, first.Values, 20)
}

func TestHeatmapReturnsDecodablePNG(t *testing.T) {
	satSvc, _ := newSatelliteFixture(t, 0)

	res, err := satSvc.Heatmap(context.Background(), &dto.HeatmapRequest{
		Latitude:  48.8566,
		Longitude: 2.3522,
		Scheme:    "temperature",
	})
	require.NoError(t, err)

	assert.Equal(t, 200, res.Width)
	assert.Equal(t, 200, res.Height)

	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), raw[:4])

	// Quad corners trace NW, NE, SE, SW of the bounds.
	assert.Equal(t, res.Bounds.West, res.Quad[0][0])
	assert.Equal(t, res.Bounds.North, res.Quad[0][1])
	assert.Equal(t, res.Bounds.East, res.Quad[2][0])
	assert.Equal(t, res.Bounds.South, res.Quad[2][1])
}
