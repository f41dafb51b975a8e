package mapper

import (
	"encoding/json"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/model"

	"gorm.io/datatypes"
)

type FolderMapper struct{}

func NewFolderMapper() *FolderMapper {
	return &FolderMapper{}
}

func (m *FolderMapper) ToEntity(f *model.Folder) *entity.Folder {
	if f == nil {
		return nil
	}

	var summary *entity.SatelliteSummary
	if len(f.SatelliteData) > 0 {
		var s entity.SatelliteSummary
		if err := json.Unmarshal(f.SatelliteData, &s); err == nil {
			summary = &s
		}
	}

	return &entity.Folder{
		Id:            f.Id,
		Name:          f.Name,
		Latitude:      f.Latitude,
		Longitude:     f.Longitude,
		Notes:         make([]*entity.Note, 0),
		SatelliteData: summary,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func (m *FolderMapper) ToModel(f *entity.Folder) *model.Folder {
	if f == nil {
		return nil
	}

	var summary datatypes.JSON
	if f.SatelliteData != nil {
		if raw, err := json.Marshal(f.SatelliteData); err == nil {
			summary = datatypes.JSON(raw)
		}
	}

	return &model.Folder{
		Id:            f.Id,
		Name:          f.Name,
		Latitude:      f.Latitude,
		Longitude:     f.Longitude,
		SatelliteData: summary,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func (m *FolderMapper) ToEntities(models []*model.Folder) []*entity.Folder {
	entities := make([]*entity.Folder, 0, len(models))
	for _, f := range models {
		entities = append(entities, m.ToEntity(f))
	}
	return entities
}
