package unitofwork

import (
	"context"

	"geotagger-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FolderRepository() contract.FolderRepository
	NoteRepository() contract.NoteRepository
	MissionRepository() contract.MissionRepository
}
