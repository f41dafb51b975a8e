package service

import (
	"context"
	"testing"
	"time"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/repository/memory"
	"geotagger-be/pkg/geo"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coordAt(lat, lon float64) geo.Coordinate {
	return geo.Coordinate{Latitude: lat, Longitude: lon, Timestamp: time.Now()}
}

func newMissionFixture(t *testing.T) (IMissionService, IFolderService) {
	t.Helper()
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	log := newTestLogger(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus := NewBusService(pubSub)
	geocoding := NewGeocodingService("", log)
	folderSvc := NewFolderService(uowFactory, geocoding, bus, nil, nil, 50, log)
	missionSvc := NewMissionService(uowFactory, bus, nil, log)
	return missionSvc, folderSvc
}

func TestActiveReturnsNilWithoutFolders(t *testing.T) {
	missionSvc, _ := newMissionFixture(t)

	mission, err := missionSvc.Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, mission)
}

func TestActiveSeedsFromRecentFolders(t *testing.T) {
	missionSvc, folderSvc := newMissionFixture(t)
	ctx := context.Background()

	coords := [][2]float64{{48.8566, 2.3522}, {48.8666, 2.3522}, {48.8766, 2.3522}, {48.8866, 2.3522}}
	for _, c := range coords {
		_, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: c[0], Longitude: c[1]})
		require.NoError(t, err)
	}

	mission, err := missionSvc.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, mission)
	assert.Equal(t, "Field Data Collection", mission.Title)
	assert.Len(t, mission.Objectives, 3)
	assert.False(t, mission.Completed)
	assert.Zero(t, mission.Progress)
}

func TestActiveReturnsSameMissionTwice(t *testing.T) {
	missionSvc, folderSvc := newMissionFixture(t)
	ctx := context.Background()

	_, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 10, Longitude: 10})
	require.NoError(t, err)

	first, err := missionSvc.Active(ctx)
	require.NoError(t, err)
	second, err := missionSvc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
}

func TestProgressCompletesObjectiveOnce(t *testing.T) {
	missionSvc, folderSvc := newMissionFixture(t)
	ctx := context.Background()

	_, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	_, err = folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8666, Longitude: 2.3522})
	require.NoError(t, err)

	_, err = missionSvc.Active(ctx)
	require.NoError(t, err)

	progress, err := missionSvc.Progress(ctx, &dto.ProgressRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	require.Len(t, progress.Completions, 1)
	assert.False(t, progress.MissionCompleted)
	assert.InDelta(t, 50.0, progress.Progress, 0.01)

	// Revisiting the completed objective emits nothing new.
	again, err := missionSvc.Progress(ctx, &dto.ProgressRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	assert.Empty(t, again.Completions)
	assert.InDelta(t, 50.0, again.Progress, 0.01)
}

func TestProgressCompletesMission(t *testing.T) {
	missionSvc, folderSvc := newMissionFixture(t)
	ctx := context.Background()

	_, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	_, err = folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8666, Longitude: 2.3522})
	require.NoError(t, err)

	_, err = missionSvc.Active(ctx)
	require.NoError(t, err)

	_, err = missionSvc.Progress(ctx, &dto.ProgressRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	final, err := missionSvc.Progress(ctx, &dto.ProgressRequest{Latitude: 48.8666, Longitude: 2.3522})
	require.NoError(t, err)

	assert.True(t, final.MissionCompleted)
	assert.InDelta(t, 100.0, final.Progress, 0.01)
}

func TestObserveWithoutMissionIsNoop(t *testing.T) {
	missionSvc, _ := newMissionFixture(t)

	completions, done, err := missionSvc.Observe(context.Background(), coordAt(48.8566, 2.3522))
	require.NoError(t, err)
	assert.Empty(t, completions)
	assert.False(t, done)
}
