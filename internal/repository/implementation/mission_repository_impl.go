package implementation

import (
	"context"
	"errors"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/mapper"
	"geotagger-be/internal/model"
	"geotagger-be/internal/repository/contract"
	"geotagger-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MissionMapper
}

func NewMissionRepository(db *gorm.DB) contract.MissionRepository {
	return &MissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewMissionMapper(),
	}
}

func (r *MissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MissionRepositoryImpl) Create(ctx context.Context, mission *entity.Mission) error {
	m := r.mapper.ToModel(mission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *MissionRepositoryImpl) Update(ctx context.Context, mission *entity.Mission) error {
	m := r.mapper.ToModel(mission)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *MissionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Mission{}, id).Error
}

func (r *MissionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mission, error) {
	var m model.Mission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mission, error) {
	var models []*model.Mission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	missions := make([]*entity.Mission, 0, len(models))
	for _, m := range models {
		missions = append(missions, r.mapper.ToEntity(m))
	}
	return missions, nil
}

func (r *MissionRepositoryImpl) CreateObjective(ctx context.Context, objective *entity.Objective) error {
	m := r.mapper.ObjectiveToModel(objective)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MissionRepositoryImpl) UpdateObjective(ctx context.Context, objective *entity.Objective) error {
	m := r.mapper.ObjectiveToModel(objective)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MissionRepositoryImpl) FindObjectives(ctx context.Context, specs ...specification.Specification) ([]*entity.Objective, error) {
	var models []*model.Objective
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	objectives := make([]*entity.Objective, 0, len(models))
	for _, m := range models {
		objectives = append(objectives, r.mapper.ObjectiveToEntity(m))
	}
	return objectives, nil
}

func (r *MissionRepositoryImpl) DeleteObjectivesByMissionId(ctx context.Context, missionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("mission_id = ?", missionId).Delete(&model.Objective{}).Error
}
