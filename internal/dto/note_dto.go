package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateNoteRequest carries the note text and the coordinate it was taken
// at. The backend decides which folder receives it.
type CreateNoteRequest struct {
	Text      string   `json:"text" validate:"required"`
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

type CreateNoteResponse struct {
	Id            uuid.UUID `json:"id"`
	FolderId      uuid.UUID `json:"folder_id"`
	FolderCreated bool      `json:"folder_created"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	FolderId  uuid.UUID `json:"folder_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
