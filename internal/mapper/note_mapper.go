package mapper

import (
	"geotagger-be/internal/entity"
	"geotagger-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:        n.Id,
		FolderId:  n.FolderId,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:        n.Id,
		FolderId:  n.FolderId,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToEntities(models []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, 0, len(models))
	for _, n := range models {
		entities = append(entities, m.ToEntity(n))
	}
	return entities
}
