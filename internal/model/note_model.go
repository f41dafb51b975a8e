package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolderId  uuid.UUID `gorm:"type:uuid;index"`
	Text      string
	CreatedAt time.Time
}
