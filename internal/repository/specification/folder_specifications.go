package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByFolderID filters notes by their owning folder.
type ByFolderID struct {
	FolderID uuid.UUID
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}

// ByFolderIDs filters notes by a set of owning folders.
type ByFolderIDs struct {
	FolderIDs []uuid.UUID
}

func (s ByFolderIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id IN ?", s.FolderIDs)
}

// ByMissionID filters objectives by their mission.
type ByMissionID struct {
	MissionID uuid.UUID
}

func (s ByMissionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mission_id = ?", s.MissionID)
}

// PendingOnly keeps objectives that have not completed yet.
type PendingOnly struct{}

func (s PendingOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed = ?", false)
}
