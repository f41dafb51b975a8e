package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs filters by a list of primary keys.
type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// OrderByCreatedAtAsc keeps the resolver's scan in insertion order.
type OrderByCreatedAtAsc struct{}

func (s OrderByCreatedAtAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByUpdatedAtDesc surfaces the most recently touched rows first.
type OrderByUpdatedAtDesc struct{}

func (s OrderByUpdatedAtDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC NULLS LAST, created_at DESC")
}

// Limit caps the result count.
type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}
