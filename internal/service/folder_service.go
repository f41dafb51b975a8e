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
	pktNats "geotagger-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IFolderService interface {
	// Resolve maps a coordinate to its folder, creating one when no
	// existing folder lies within the proximity threshold.
	Resolve(ctx context.Context, req *dto.ResolveFolderRequest) (*dto.ResolveFolderResponse, error)

	// ResolveEntity is the entity-level variant used by collaborating
	// services (e.g. note creation). The bool reports a fresh folder.
	ResolveEntity(ctx context.Context, coord geo.Coordinate) (*entity.Folder, bool, error)

	GetAll(ctx context.Context) ([]*dto.FolderResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.FolderResponse, error)
	Rename(ctx context.Context, req *dto.RenameFolderRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Nearby(ctx context.Context, req *dto.NearbyFoldersRequest) ([]*dto.NearbyFolderResponse, error)
}

type folderService struct {
	uowFactory       unitofwork.RepositoryFactory
	geocodingService IGeocodingService
	busService       IBusService
	eventPublisher   *pktNats.Publisher
	rdb              *redis.Client
	thresholdMeters  float64
	logger           logger.ILogger
}

func NewFolderService(
	uowFactory unitofwork.RepositoryFactory,
	geocodingService IGeocodingService,
	busService IBusService,
	eventPublisher *pktNats.Publisher,
	rdb *redis.Client,
	thresholdMeters float64,
	log logger.ILogger,
) IFolderService {
	if thresholdMeters <= 0 {
		thresholdMeters = geo.ProximityThresholdMeters
	}
	return &folderService{
		uowFactory:       uowFactory,
		geocodingService: geocodingService,
		busService:       busService,
		eventPublisher:   eventPublisher,
		rdb:              rdb,
		thresholdMeters:  thresholdMeters,
		logger:           log,
	}
}

func (s *folderService) Resolve(ctx context.Context, req *dto.ResolveFolderRequest) (*dto.ResolveFolderResponse, error) {
	coord := geo.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now(),
	}
	if req.Accuracy != nil {
		coord.Accuracy = *req.Accuracy
	}

	folder, created, err := s.ResolveEntity(ctx, coord)
	if err != nil {
		return nil, err
	}
	return &dto.ResolveFolderResponse{
		Id:      folder.Id,
		Name:    folder.Name,
		Created: created,
	}, nil
}

func (s *folderService) ResolveEntity(ctx context.Context, coord geo.Coordinate) (*entity.Folder, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := s.findWithin(ctx, uow, coord)
	if err != nil {
		return nil, false, err
	}
	if folder != nil {
		return folder, false, nil
	}

	// Nothing nearby. Serialize creation per location bucket so two racing
	// updates for the same spot cannot mint two folders.
	unlock := s.lockBucket(ctx, coord)
	defer unlock()

	// Re-check under the lock: the race loser must adopt the winner's folder.
	folder, err = s.findWithin(ctx, uow, coord)
	if err != nil {
		return nil, false, err
	}
	if folder != nil {
		return folder, false, nil
	}

	folder = &entity.Folder{
		Id:        uuid.New(),
		Name:      s.geocodingService.NameFor(ctx, coord.Latitude, coord.Longitude),
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Notes:     make([]*entity.Note, 0),
		CreatedAt: time.Now(),
	}
	if err := uow.FolderRepository().Create(ctx, folder); err != nil {
		return nil, false, err
	}

	evt := events.NewFolderCreated(folder.Id, folder.Name, folder.Latitude, folder.Longitude)
	if err := s.busService.Publish(ctx, events.TopicFolderCreated, evt); err != nil {
		s.logger.Warn("folder", "failed to publish folder.created on bus", map[string]interface{}{
			"folder_id": folder.Id.String(),
			"error":     err.Error(),
		})
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("folder", "failed to mirror folder.created to NATS", map[string]interface{}{
				"folder_id": folder.Id.String(),
				"error":     err.Error(),
			})
		}
	}

	return folder, true, nil
}

// findWithin scans folders in creation order and returns the first inside
// the proximity threshold, or nil.
func (s *folderService) findWithin(ctx context.Context, uow unitofwork.UnitOfWork, coord geo.Coordinate) (*entity.Folder, error) {
	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return nil, err
	}
	if folder, ok := geo.FirstWithin(coord, folders, s.thresholdMeters); ok {
		return folder, nil
	}
	return nil, nil
}

// lockBucket takes a short lived Redis lock on the coordinate's location
// bucket and returns the release func. Without Redis the resolver degrades
// to unlocked with a warning rather than failing the request.
func (s *folderService) lockBucket(ctx context.Context, coord geo.Coordinate) func() {
	if s.rdb == nil {
		return func() {}
	}

	latBucket, lonBucket := geo.BucketKey(coord, s.thresholdMeters)
	key := fmt.Sprintf("folder:create:%d:%d", latBucket, lonBucket)

	for attempt := 0; attempt < 10; attempt++ {
		ok, err := s.rdb.SetNX(ctx, key, "1", 5*time.Second).Result()
		if err != nil {
			s.logger.Warn("folder", "redis lock unavailable, creating unlocked", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			return func() {}
		}
		if ok {
			return func() {
				s.rdb.Del(context.Background(), key)
			}
		}

		select {
		case <-ctx.Done():
			return func() {}
		case <-time.After(100 * time.Millisecond):
		}
	}

	s.logger.Warn("folder", "bucket lock contention exceeded retries, creating unlocked", map[string]interface{}{
		"key": key,
	})
	return func() {}
}

func (s *folderService) GetAll(ctx context.Context) ([]*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderByUpdatedAtDesc{})
	if err != nil {
		return nil, err
	}

	if len(folders) == 0 {
		return []*dto.FolderResponse{}, nil
	}

	folderIds := make([]uuid.UUID, 0, len(folders))
	for _, f := range folders {
		folderIds = append(folderIds, f.Id)
	}
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByFolderIDs{FolderIDs: folderIds},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	notesByFolder := make(map[uuid.UUID][]dto.NoteResponse, len(folders))
	for _, n := range notes {
		notesByFolder[n.FolderId] = append(notesByFolder[n.FolderId], noteToDTO(n))
	}

	res := make([]*dto.FolderResponse, 0, len(folders))
	for _, f := range folders {
		res = append(res, folderToDTO(f, notesByFolder[f.Id]))
	}
	return res, nil
}

func (s *folderService) Show(ctx context.Context, id uuid.UUID) (*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, nil
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByFolderID{FolderID: id},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	noteDTOs := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		noteDTOs = append(noteDTOs, noteToDTO(n))
	}
	return folderToDTO(folder, noteDTOs), nil
}

func (s *folderService) Rename(ctx context.Context, req *dto.RenameFolderRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if folder == nil {
		return ErrFolderNotFound
	}

	folder.Name = req.Name
	now := time.Now()
	folder.UpdatedAt = &now
	return uow.FolderRepository().Update(ctx, folder)
}

func (s *folderService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.NoteRepository().DeleteByFolderId(ctx, id); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		_ = uow.Rollback()
		return err
	}

	return uow.Commit()
}

func (s *folderService) Nearby(ctx context.Context, req *dto.NearbyFoldersRequest) ([]*dto.NearbyFolderResponse, error) {
	radius := req.Radius
	if radius <= 0 {
		radius = s.thresholdMeters
	}
	coord := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderByCreatedAtAsc{})
	if err != nil {
		return nil, err
	}

	near := geo.Nearby(coord, folders, radius)
	res := make([]*dto.NearbyFolderResponse, 0, len(near))
	for _, f := range near {
		res = append(res, &dto.NearbyFolderResponse{
			Id:             f.Id,
			Name:           f.Name,
			Latitude:       f.Latitude,
			Longitude:      f.Longitude,
			DistanceMeters: geo.Distance(coord, f.Anchor()),
		})
	}
	return res, nil
}

func folderToDTO(f *entity.Folder, notes []dto.NoteResponse) *dto.FolderResponse {
	if notes == nil {
		notes = make([]dto.NoteResponse, 0)
	}
	res := &dto.FolderResponse{
		Id:        f.Id,
		Name:      f.Name,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Notes:     notes,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.SatelliteData != nil {
		res.SatelliteData = summaryToDTO(f.SatelliteData)
	}
	return res
}

func noteToDTO(n *entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
		Id:        n.Id,
		FolderId:  n.FolderId,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}
