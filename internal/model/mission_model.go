package model

import (
	"time"

	"github.com/google/uuid"
)

type Mission struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Reward      int
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Objective struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MissionId      uuid.UUID `gorm:"type:uuid;index"`
	Description    string
	TargetLat      *float64
	TargetLon      *float64
	RequiredMeters float64
	Completed      bool
}
