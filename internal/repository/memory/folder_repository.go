package memory

import (
	"context"
	"sort"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/repository/contract"
	"geotagger-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FolderRepository struct {
	store *Store
}

func NewFolderRepository(store *Store) contract.FolderRepository {
	return &FolderRepository{store: store}
}

func (r *FolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *folder
	r.store.folders = append(r.store.folders, &copied)
	return nil
}

func (r *FolderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.store.folderIndex(folder.Id); i >= 0 {
		copied := *folder
		r.store.folders[i] = &copied
	}
	return nil
}

func (r *FolderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.store.folderIndex(id); i >= 0 {
		r.store.folders = append(r.store.folders[:i], r.store.folders[i+1:]...)
	}
	return nil
}

func (r *FolderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterFolders(r.store.folders, specs)
	if len(matched) == 0 {
		return nil, nil
	}
	copied := *matched[0]
	return &copied, nil
}

func (r *FolderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterFolders(r.store.folders, specs)
	out := make([]*entity.Folder, 0, len(matched))
	for _, f := range matched {
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *FolderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(filterFolders(r.store.folders, specs))), nil
}

func filterFolders(folders []*entity.Folder, specs []specification.Specification) []*entity.Folder {
	matched := append([]*entity.Folder(nil), folders...)
	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			matched = keepFolders(matched, func(f *entity.Folder) bool { return f.Id == s.ID })
		case specification.ByIDs:
			set := idSet(s.IDs)
			matched = keepFolders(matched, func(f *entity.Folder) bool { return set[f.Id] })
		case specification.OrderByCreatedAtAsc:
			sort.SliceStable(matched, func(i, j int) bool {
				return matched[i].CreatedAt.Before(matched[j].CreatedAt)
			})
		case specification.OrderByUpdatedAtDesc:
			sort.SliceStable(matched, func(i, j int) bool {
				ti, tj := matched[i].CreatedAt, matched[j].CreatedAt
				if matched[i].UpdatedAt != nil {
					ti = *matched[i].UpdatedAt
				}
				if matched[j].UpdatedAt != nil {
					tj = *matched[j].UpdatedAt
				}
				return ti.After(tj)
			})
		case specification.Limit:
			limit = s.N
		}
	}
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func keepFolders(folders []*entity.Folder, pred func(*entity.Folder) bool) []*entity.Folder {
	out := folders[:0]
	for _, f := range folders {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
