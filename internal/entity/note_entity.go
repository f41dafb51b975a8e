package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is owned by exactly one folder and never moves to another; deleting
// the folder cascades to its notes.
type Note struct {
	Id        uuid.UUID
	FolderId  uuid.UUID
	Text      string
	CreatedAt time.Time
}
