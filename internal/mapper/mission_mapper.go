package mapper

import (
	"geotagger-be/internal/entity"
	"geotagger-be/internal/model"
)

type MissionMapper struct{}

func NewMissionMapper() *MissionMapper {
	return &MissionMapper{}
}

func (m *MissionMapper) ToEntity(mi *model.Mission) *entity.Mission {
	if mi == nil {
		return nil
	}
	return &entity.Mission{
		Id:          mi.Id,
		Title:       mi.Title,
		Description: mi.Description,
		Reward:      mi.Reward,
		Objectives:  make([]*entity.Objective, 0),
		Completed:   mi.Completed,
		CreatedAt:   mi.CreatedAt,
		UpdatedAt:   mi.UpdatedAt,
	}
}

func (m *MissionMapper) ToModel(mi *entity.Mission) *model.Mission {
	if mi == nil {
		return nil
	}
	return &model.Mission{
		Id:          mi.Id,
		Title:       mi.Title,
		Description: mi.Description,
		Reward:      mi.Reward,
		Completed:   mi.Completed,
		CreatedAt:   mi.CreatedAt,
		UpdatedAt:   mi.UpdatedAt,
	}
}

func (m *MissionMapper) ObjectiveToEntity(o *model.Objective) *entity.Objective {
	if o == nil {
		return nil
	}
	return &entity.Objective{
		Id:             o.Id,
		MissionId:      o.MissionId,
		Description:    o.Description,
		TargetLat:      o.TargetLat,
		TargetLon:      o.TargetLon,
		RequiredMeters: o.RequiredMeters,
		Completed:      o.Completed,
	}
}

func (m *MissionMapper) ObjectiveToModel(o *entity.Objective) *model.Objective {
	if o == nil {
		return nil
	}
	return &model.Objective{
		Id:             o.Id,
		MissionId:      o.MissionId,
		Description:    o.Description,
		TargetLat:      o.TargetLat,
		TargetLon:      o.TargetLon,
		RequiredMeters: o.RequiredMeters,
		Completed:      o.Completed,
	}
}
