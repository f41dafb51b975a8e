package memory

import (
	"context"
	"sort"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/repository/contract"
	"geotagger-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) contract.NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *note
	r.store.notes = append(r.store.notes, &copied)
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.store.noteIndex(id); i >= 0 {
		r.store.notes = append(r.store.notes[:i], r.store.notes[i+1:]...)
	}
	return nil
}

func (r *NoteRepository) DeleteByFolderId(ctx context.Context, folderId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.FolderId != folderId {
			kept = append(kept, n)
		}
	}
	r.store.notes = kept
	return nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterNotes(r.store.notes, specs)
	if len(matched) == 0 {
		return nil, nil
	}
	copied := *matched[0]
	return &copied, nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterNotes(r.store.notes, specs)
	out := make([]*entity.Note, 0, len(matched))
	for _, n := range matched {
		copied := *n
		out = append(out, &copied)
	}
	return out, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(filterNotes(r.store.notes, specs))), nil
}

func filterNotes(notes []*entity.Note, specs []specification.Specification) []*entity.Note {
	matched := append([]*entity.Note(nil), notes...)
	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			matched = keepNotes(matched, func(n *entity.Note) bool { return n.Id == s.ID })
		case specification.ByFolderID:
			matched = keepNotes(matched, func(n *entity.Note) bool { return n.FolderId == s.FolderID })
		case specification.ByFolderIDs:
			set := idSet(s.FolderIDs)
			matched = keepNotes(matched, func(n *entity.Note) bool { return set[n.FolderId] })
		case specification.OrderByCreatedAtAsc:
			sort.SliceStable(matched, func(i, j int) bool {
				return matched[i].CreatedAt.Before(matched[j].CreatedAt)
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

func keepNotes(notes []*entity.Note, pred func(*entity.Note) bool) []*entity.Note {
	out := notes[:0]
	for _, n := range notes {
		if pred(n) {
			out = append(out, n)
		}
	}
	return out
}
