package contract

import (
	"context"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MissionRepository interface {
	Create(ctx context.Context, mission *entity.Mission) error
	Update(ctx context.Context, mission *entity.Mission) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mission, error)

	CreateObjective(ctx context.Context, objective *entity.Objective) error
	UpdateObjective(ctx context.Context, objective *entity.Objective) error
	FindObjectives(ctx context.Context, specs ...specification.Specification) ([]*entity.Objective, error)
	DeleteObjectivesByMissionId(ctx context.Context, missionId uuid.UUID) error
}
