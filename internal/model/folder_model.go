package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Folder struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Latitude      float64
	Longitude     float64
	SatelliteData datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
