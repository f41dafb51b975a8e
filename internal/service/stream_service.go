package service

import (
	"context"
	"time"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/pkg/geo"
)

type IStreamService interface {
	// HandleLocation processes one frame from a client's location stream
	// and returns the frames to push back. Collaborator failures come back
	// as stream.error frames, never as a dropped connection.
	HandleLocation(ctx context.Context, frame dto.LocationUpdateFrame) []interface{}
}

type streamService struct {
	folderService  IFolderService
	missionService IMissionService
	logger         logger.ILogger
}

func NewStreamService(
	folderService IFolderService,
	missionService IMissionService,
	log logger.ILogger,
) IStreamService {
	return &streamService{
		folderService:  folderService,
		missionService: missionService,
		logger:         log,
	}
}

func (s *streamService) HandleLocation(ctx context.Context, frame dto.LocationUpdateFrame) []interface{} {
	// Provider-side failures ride in on the same stream. Surface them and
	// keep the loop alive.
	if frame.Error != "" {
		return []interface{}{dto.StreamErrorFrame{
			Type:    dto.FrameStreamError,
			Kind:    normalizeStreamError(frame.Error),
			Message: streamErrorMessage(frame.Error),
		}}
	}

	coord := geo.Coordinate{
		Latitude:  frame.Latitude,
		Longitude: frame.Longitude,
		Timestamp: frame.Timestamp,
	}
	if coord.Timestamp.IsZero() {
		coord.Timestamp = time.Now()
	}
	if frame.Accuracy != nil {
		coord.Accuracy = *frame.Accuracy
	}
	if frame.Altitude != nil {
		coord.Altitude = frame.Altitude
	}

	out := make([]interface{}, 0, 2)

	near, err := s.folderService.Nearby(ctx, &dto.NearbyFoldersRequest{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
	})
	if err != nil {
		s.logger.Warn("stream", "nearby lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		out = append(out, dto.StreamErrorFrame{
			Type:    dto.FrameStreamError,
			Kind:    dto.StreamErrUnavailable,
			Message: "proximity lookup failed",
		})
	} else {
		for _, f := range near {
			out = append(out, dto.ProximityAlertFrame{
				Type:           dto.FrameProximityAlert,
				FolderId:       f.Id.String(),
				FolderName:     f.Name,
				DistanceMeters: f.DistanceMeters,
			})
		}
	}

	completions, done, err := s.missionService.Observe(ctx, coord)
	if err != nil {
		s.logger.Warn("stream", "mission observe failed", map[string]interface{}{
			"error": err.Error(),
		})
		out = append(out, dto.StreamErrorFrame{
			Type:    dto.FrameStreamError,
			Kind:    dto.StreamErrUnavailable,
			Message: "mission progress unavailable",
		})
		return out
	}

	for _, c := range completions {
		out = append(out, map[string]interface{}{
			"type":            dto.FrameObjectiveCompleted,
			"objective_id":    c.ObjectiveId.String(),
			"description":     c.Description,
			"distance_meters": c.Distance,
			"at":              c.At,
		})
	}
	if done {
		out = append(out, map[string]interface{}{
			"type": dto.FrameMissionCompleted,
		})
	}

	return out
}

func normalizeStreamError(kind string) string {
	switch kind {
	case dto.StreamErrUnsupported, dto.StreamErrPermissionDenied, dto.StreamErrUnavailable, dto.StreamErrTimeout:
		return kind
	default:
		return dto.StreamErrUnavailable
	}
}

func streamErrorMessage(kind string) string {
	switch kind {
	case dto.StreamErrUnsupported:
		return "location streaming is not supported by this client"
	case dto.StreamErrPermissionDenied:
		return "location permission denied"
	case dto.StreamErrTimeout:
		return "location fix timed out"
	default:
		return "location provider unavailable"
	}
}
