package memory

import (
	"sync"

	"geotagger-be/internal/entity"

	"github.com/google/uuid"
)

// Store is the shared backing state for the in-memory repositories. It is
// safe for concurrent use and keeps rows in insertion order so created_at
// ordering behaves like the SQL implementations.
type Store struct {
	mu         sync.Mutex
	folders    []*entity.Folder
	notes      []*entity.Note
	missions   []*entity.Mission
	objectives []*entity.Objective
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) folderIndex(id uuid.UUID) int {
	for i, f := range s.folders {
		if f.Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) noteIndex(id uuid.UUID) int {
	for i, n := range s.notes {
		if n.Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) missionIndex(id uuid.UUID) int {
	for i, m := range s.missions {
		if m.Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) objectiveIndex(id uuid.UUID) int {
	for i, o := range s.objectives {
		if o.Id == id {
			return i
		}
	}
	return -1
}
