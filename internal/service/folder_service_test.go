package service

import (
	"context"
	"testing"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/repository/memory"
	"geotagger-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewIsolatedLogger(t.TempDir() + "/test.log")
}

func newFolderFixture(t *testing.T) (IFolderService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	log := newTestLogger(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus := NewBusService(pubSub)
	geocoding := NewGeocodingService("", log)
	svc := NewFolderService(uowFactory, geocoding, bus, nil, nil, 50, log)
	return svc, store
}

func TestResolveCreatesFolderWhenNothingNearby(t *testing.T) {
	svc, _ := newFolderFixture(t)

	res, err := svc.Resolve(context.Background(), &dto.ResolveFolderRequest{
		Latitude:  48.8566,
		Longitude: 2.3522,
	})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "Location 48.8566, 2.3522", res.Name)
}

func TestResolveReusesFolderWithinThreshold(t *testing.T) {
	svc, _ := newFolderFixture(t)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)

	// ~15 m north of the first fix.
	second, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.85673, Longitude: 2.3522})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.Id, second.Id)
}

func TestResolveCreatesSecondFolderPastThreshold(t *testing.T) {
	svc, _ := newFolderFixture(t)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)

	// ~1.1 km away.
	second, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8666, Longitude: 2.3522})
	require.NoError(t, err)

	assert.True(t, second.Created)
	assert.NotEqual(t, first.Id, second.Id)
}

func TestResolvePrefersOldestFolderOnOverlap(t *testing.T) {
	svc, _ := newFolderFixture(t)
	ctx := context.Background()

	// Two folders ~60 m apart; a point between them is within 50 m of both.
	first, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.85660, Longitude: 2.3522})
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.85714, Longitude: 2.3522})
	require.NoError(t, err)

	mid, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.85687, Longitude: 2.3522})
	require.NoError(t, err)

	assert.False(t, mid.Created)
	assert.Equal(t, first.Id, mid.Id)
}

func TestRenameAndShow(t *testing.T) {
	svc, _ := newFolderFixture(t)
	ctx := context.Background()

	res, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 10, Longitude: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Rename(ctx, &dto.RenameFolderRequest{Id: res.Id, Name: "Survey Site A"}))

	shown, err := svc.Show(ctx, res.Id)
	require.NoError(t, err)
	require.NotNil(t, shown)
	assert.Equal(t, "Survey Site A", shown.Name)
}

func TestDeleteCascadesNotes(t *testing.T) {
	svc, store := newFolderFixture(t)
	ctx := context.Background()
	noteSvc := NewNoteService(memory.NewRepositoryFactory(store), svc)

	created, err := noteSvc.Create(ctx, &dto.CreateNoteRequest{
		Text:      "soil sample taken",
		Latitude:  10,
		Longitude: 10,
	})
	require.NoError(t, err)
	require.True(t, created.FolderCreated)

	require.NoError(t, svc.Delete(ctx, created.FolderId))

	uow := memory.NewUnitOfWork(store)
	notes, err := uow.NoteRepository().FindAll(ctx, specification.ByFolderID{FolderID: created.FolderId})
	require.NoError(t, err)
	assert.Empty(t, notes)

	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: created.FolderId})
	require.NoError(t, err)
	assert.Nil(t, folder)
}

func TestNearbyReturnsDistances(t *testing.T) {
	svc, _ := newFolderFixture(t)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8666, Longitude: 2.3522})
	require.NoError(t, err)

	near, err := svc.Nearby(ctx, &dto.NearbyFoldersRequest{
		Latitude:  48.85665,
		Longitude: 2.3522,
	})
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.InDelta(t, 5.6, near[0].DistanceMeters, 1.0)
}

func TestNearbyEmptyIsNotAnError(t *testing.T) {
	svc, _ := newFolderFixture(t)

	near, err := svc.Nearby(context.Background(), &dto.NearbyFoldersRequest{Latitude: 0, Longitude: 0})
	require.NoError(t, err)
	assert.NotNil(t, near)
	assert.Empty(t, near)
}
