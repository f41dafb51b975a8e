package service

import (
	"context"
	"testing"
	"time"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamFixture(t *testing.T) (IStreamService, IFolderService, IMissionService) {
	t.Helper()
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	log := newTestLogger(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	bus := NewBusService(pubSub)
	folderSvc := NewFolderService(uowFactory, NewGeocodingService("", log), bus, nil, nil, 50, log)
	missionSvc := NewMissionService(uowFactory, bus, nil, log)
	streamSvc := NewStreamService(folderSvc, missionSvc, log)
	return streamSvc, folderSvc, missionSvc
}

func locationFrame(lat, lon float64) dto.LocationUpdateFrame {
	return dto.LocationUpdateFrame{
		Type:      dto.FrameLocationUpdate,
		Latitude:  lat,
		Longitude: lon,
		Timestamp: time.Now(),
	}
}

func TestHandleLocationEmitsProximityAlert(t *testing.T) {
	streamSvc, folderSvc, _ := newStreamFixture(t)
	ctx := context.Background()

	created, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)

	out := streamSvc.HandleLocation(ctx, locationFrame(48.85665, 2.3522))

	require.NotEmpty(t, out)
	alert, ok := out[0].(dto.ProximityAlertFrame)
	require.True(t, ok)
	assert.Equal(t, dto.FrameProximityAlert, alert.Type)
	assert.Equal(t, created.Id.String(), alert.FolderId)
	assert.Less(t, alert.DistanceMeters, 50.0)
}

func TestHandleLocationFarFromEverythingIsQuiet(t *testing.T) {
	streamSvc, folderSvc, _ := newStreamFixture(t)
	ctx := context.Background()

	_, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)

	out := streamSvc.HandleLocation(ctx, locationFrame(40.0, -74.0))
	assert.Empty(t, out)
}

func TestHandleLocationDrivesMissionProgress(t *testing.T) {
	streamSvc, folderSvc, missionSvc := newStreamFixture(t)
	ctx := context.Background()

	_, err := folderSvc.Resolve(ctx, &dto.ResolveFolderRequest{Latitude: 48.8566, Longitude: 2.3522})
	require.NoError(t, err)
	_, err = missionSvc.Active(ctx)
	require.NoError(t, err)

	out := streamSvc.HandleLocation(ctx, locationFrame(48.8566, 2.3522))

	var sawObjective, sawMissionDone bool
	for _, frame := range out {
		m, ok := frame.(map[string]interface{})
		if !ok {
			continue
		}
		switch m["type"] {
		case dto.FrameObjectiveCompleted:
			sawObjective = true
		case dto.FrameMissionCompleted:
			sawMissionDone = true
		}
	}
	assert.True(t, sawObjective)
	assert.True(t, sawMissionDone)
}

func TestHandleLocationSurfacesProviderErrors(t *testing.T) {
	streamSvc, _, _ := newStreamFixture(t)

	cases := []struct {
		in   string
		want string
	}{
		{dto.StreamErrUnsupported, dto.StreamErrUnsupported},
		{dto.StreamErrPermissionDenied, dto.StreamErrPermissionDenied},
		{dto.StreamErrUnavailable, dto.StreamErrUnavailable},
		{dto.StreamErrTimeout, dto.StreamErrTimeout},
		{"something-else", dto.StreamErrUnavailable},
	}

	for _, tc := range cases {
		out := streamSvc.HandleLocation(context.Background(), dto.LocationUpdateFrame{
			Type:  dto.FrameLocationUpdate,
			Error: tc.in,
		})
		require.Len(t, out, 1, tc.in)
		errFrame, ok := out[0].(dto.StreamErrorFrame)
		require.True(t, ok)
		assert.Equal(t, dto.FrameStreamError, errFrame.Type)
		assert.Equal(t, tc.want, errFrame.Kind)
		assert.NotEmpty(t, errFrame.Message)
	}
}
