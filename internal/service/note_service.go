package service

import (
	"context"
	"time"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/entity"
	"geotagger-be/internal/repository/specification"
	"geotagger-be/internal/repository/unitofwork"
	"geotagger-be/pkg/geo"

	"github.com/google/uuid"
)

type INoteService interface {
	// Create stores a note under whichever folder its coordinate resolves
	// to, creating the folder first when nothing is within the threshold.
	// A note never moves to another folder afterwards.
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)

	GetAllByFolder(ctx context.Context, folderId uuid.UUID) ([]*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory    unitofwork.RepositoryFactory
	folderService IFolderService
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	folderService IFolderService,
) INoteService {
	return &noteService{
		uowFactory:    uowFactory,
		folderService: folderService,
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	coord := geo.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now(),
	}
	if req.Accuracy != nil {
		coord.Accuracy = *req.Accuracy
	}

	folder, created, err := s.folderService.ResolveEntity(ctx, coord)
	if err != nil {
		return nil, err
	}

	note := entity.Note{
		Id:        uuid.New(),
		FolderId:  folder.Id,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{
		Id:            note.Id,
		FolderId:      folder.Id,
		FolderCreated: created,
	}, nil
}

func (s *noteService) GetAllByFolder(ctx context.Context, folderId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByFolderID{FolderID: folderId},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		d := noteToDTO(n)
		res = append(res, &d)
	}
	return res, nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().Delete(ctx, id)
}
