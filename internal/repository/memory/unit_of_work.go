package memory

import (
	"context"

	"geotagger-be/internal/repository/contract"
	"geotagger-be/internal/repository/unitofwork"
)

// UnitOfWork is the in-memory counterpart of the GORM unit of work. Begin,
// Commit and Rollback are no-ops since the store mutates in place.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) unitofwork.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWork) Commit() error                   { return nil }
func (u *UnitOfWork) Rollback() error                 { return nil }

func (u *UnitOfWork) FolderRepository() contract.FolderRepository {
	return NewFolderRepository(u.store)
}

func (u *UnitOfWork) NoteRepository() contract.NoteRepository {
	return NewNoteRepository(u.store)
}

func (u *UnitOfWork) MissionRepository() contract.MissionRepository {
	return NewMissionRepository(u.store)
}

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return NewUnitOfWork(f.store)
}
