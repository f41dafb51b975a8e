package service

import (
	"context"
	"fmt"
	"time"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/entity"
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/repository/specification"
	"geotagger-be/internal/repository/unitofwork"
	"geotagger-be/pkg/events"
	"geotagger-be/pkg/geo"
	"geotagger-be/pkg/mission"
	pktNats "geotagger-be/pkg/nats"

	"github.com/google/uuid"
)

// missionSeedSize caps how many recent folders seed a new mission.
const missionSeedSize = 3

type IMissionService interface {
	// Active returns the current mission, seeding one from the most recent
	// folders when none is running. Returns nil when there are no folders
	// to seed from.
	Active(ctx context.Context) (*dto.MissionResponse, error)

	// Progress evaluates a coordinate against the active mission's pending
	// objectives, persists any completions and publishes their events.
	Progress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error)

	// Observe is the entity-level variant the location stream uses.
	Observe(ctx context.Context, coord geo.Coordinate) ([]mission.Completion, bool, error)
}

type missionService struct {
	uowFactory     unitofwork.RepositoryFactory
	busService     IBusService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewMissionService(
	uowFactory unitofwork.RepositoryFactory,
	busService IBusService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IMissionService {
	return &missionService{
		uowFactory:     uowFactory,
		busService:     busService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *missionService) Active(ctx context.Context) (*dto.MissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, objectives, err := s.activeMission(ctx, uow)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m, objectives, err = s.seedMission(ctx, uow)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, nil
		}
	}
	return missionToDTO(m, objectives), nil
}

func (s *missionService) Progress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error) {
	coord := geo.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now(),
	}

	completions, done, err := s.Observe(ctx, coord)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, objectives, err := s.activeOrLastMission(ctx, uow)
	if err != nil {
		return nil, err
	}

	res := &dto.ProgressResponse{
		Completions:      make([]dto.CompletionResponse, 0, len(completions)),
		MissionCompleted: done,
	}
	for _, c := range completions {
		res.Completions = append(res.Completions, dto.CompletionResponse{
			ObjectiveId:    c.ObjectiveId,
			Description:    c.Description,
			DistanceMeters: c.Distance,
			At:             c.At,
		})
	}
	if m != nil {
		res.Progress = trackerFor(objectives).Progress()
	}
	return res, nil
}

func (s *missionService) Observe(ctx context.Context, coord geo.Coordinate) ([]mission.Completion, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, objectives, err := s.activeMission(ctx, uow)
	if err != nil {
		return nil, false, err
	}
	if m == nil {
		return nil, false, nil
	}

	tracker := trackerFor(objectives)
	completions := tracker.Observe(coord)
	if len(completions) == 0 {
		return completions, false, nil
	}

	// Persist each transition, then the mission itself if it finished.
	completedIds := make(map[uuid.UUID]bool, len(completions))
	for _, c := range completions {
		completedIds[c.ObjectiveId] = true
	}
	for _, obj := range objectives {
		if !completedIds[obj.Id] {
			continue
		}
		obj.Completed = true
		if err := uow.MissionRepository().UpdateObjective(ctx, obj); err != nil {
			return nil, false, err
		}
	}

	for _, c := range completions {
		evt := events.NewObjectiveCompleted(m.Id, c.ObjectiveId, c.Description, c.Distance)
		s.publish(ctx, events.TopicObjectiveCompleted, evt)
	}

	done := tracker.Done()
	if done && !m.Completed {
		m.Completed = true
		now := time.Now()
		m.UpdatedAt = &now
		if err := uow.MissionRepository().Update(ctx, m); err != nil {
			return nil, false, err
		}
		s.publish(ctx, events.TopicMissionCompleted, events.NewMissionCompleted(m.Id, m.Title))
	}

	return completions, done, nil
}

// activeMission loads the newest non-completed mission with its objectives.
func (s *missionService) activeMission(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Mission, []*entity.Objective, error) {
	missions, err := uow.MissionRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return nil, nil, err
	}

	var active *entity.Mission
	for _, m := range missions {
		if !m.Completed {
			active = m
		}
	}
	if active == nil {
		return nil, nil, nil
	}

	objectives, err := uow.MissionRepository().FindObjectives(ctx, specification.ByMissionID{MissionID: active.Id})
	if err != nil {
		return nil, nil, err
	}
	return active, objectives, nil
}

// activeOrLastMission prefers the running mission but falls back to the most
// recently created one, so progress reads stay meaningful right after the
// final objective completes.
func (s *missionService) activeOrLastMission(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Mission, []*entity.Objective, error) {
	m, objectives, err := s.activeMission(ctx, uow)
	if err != nil || m != nil {
		return m, objectives, err
	}

	missions, err := uow.MissionRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return nil, nil, err
	}
	if len(missions) == 0 {
		return nil, nil, nil
	}

	last := missions[len(missions)-1]
	objectives, err = uow.MissionRepository().FindObjectives(ctx, specification.ByMissionID{MissionID: last.Id})
	if err != nil {
		return nil, nil, err
	}
	return last, objectives, nil
}

// seedMission builds a "Field Data Collection" mission from the most recent
// folders. Without folders there is nothing to visit and no mission is made.
func (s *missionService) seedMission(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Mission, []*entity.Objective, error) {
	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.OrderByUpdatedAtDesc{},
		specification.Limit{N: missionSeedSize},
	)
	if err != nil {
		return nil, nil, err
	}
	if len(folders) == 0 {
		return nil, nil, nil
	}

	m := &entity.Mission{
		Id:          uuid.New(),
		Title:       "Field Data Collection",
		Description: "Revisit your recent locations and collect fresh observations.",
		Reward:      100,
		Completed:   false,
		CreatedAt:   time.Now(),
	}
	if err := uow.MissionRepository().Create(ctx, m); err != nil {
		return nil, nil, err
	}

	objectives := make([]*entity.Objective, 0, len(folders))
	for _, f := range folders {
		lat, lon := f.Latitude, f.Longitude
		obj := &entity.Objective{
			Id:             uuid.New(),
			MissionId:      m.Id,
			Description:    fmt.Sprintf("Visit %s", f.Name),
			TargetLat:      &lat,
			TargetLon:      &lon,
			RequiredMeters: geo.ProximityThresholdMeters,
			Completed:      false,
		}
		if err := uow.MissionRepository().CreateObjective(ctx, obj); err != nil {
			return nil, nil, err
		}
		objectives = append(objectives, obj)
	}

	return m, objectives, nil
}

func (s *missionService) publish(ctx context.Context, topic string, evt events.BaseEvent) {
	if err := s.busService.Publish(ctx, topic, evt); err != nil {
		s.logger.Warn("mission", "failed to publish event on bus", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("mission", "failed to mirror event to NATS", map[string]interface{}{
				"topic": topic,
				"error": err.Error(),
			})
		}
	}
}

// trackerFor adapts persisted objectives into the tracker's view.
func trackerFor(objectives []*entity.Objective) *mission.Tracker {
	tracked := make([]*mission.Objective, 0, len(objectives))
	for _, obj := range objectives {
		tracked = append(tracked, &mission.Objective{
			Id:             obj.Id,
			Description:    obj.Description,
			Target:         obj.Target(),
			RequiredMeters: obj.RequiredMeters,
			Completed:      obj.Completed,
		})
	}
	return mission.NewTracker(tracked)
}

func missionToDTO(m *entity.Mission, objectives []*entity.Objective) *dto.MissionResponse {
	objDTOs := make([]dto.ObjectiveResponse, 0, len(objectives))
	for _, obj := range objectives {
		objDTOs = append(objDTOs, dto.ObjectiveResponse{
			Id:             obj.Id,
			Description:    obj.Description,
			TargetLat:      obj.TargetLat,
			TargetLon:      obj.TargetLon,
			RequiredMeters: obj.RequiredMeters,
			Completed:      obj.Completed,
		})
	}
	return &dto.MissionResponse{
		Id:          m.Id,
		Title:       m.Title,
		Description: m.Description,
		Reward:      m.Reward,
		Objectives:  objDTOs,
		Completed:   m.Completed,
		Progress:    trackerFor(objectives).Progress(),
		CreatedAt:   m.CreatedAt,
	}
}
