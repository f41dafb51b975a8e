package memory

import (
	"context"
	"sort"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/repository/contract"
	"geotagger-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MissionRepository struct {
	store *Store
}

func NewMissionRepository(store *Store) contract.MissionRepository {
	return &MissionRepository{store: store}
}

func (r *MissionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *mission
	copied.Objectives = nil
	r.store.missions = append(r.store.missions, &copied)
	return nil
}

func (r *MissionRepository) Update(ctx context.Context, mission *entity.Mission) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.store.missionIndex(mission.Id); i >= 0 {
		copied := *mission
		copied.Objectives = nil
		r.store.missions[i] = &copied
	}
	return nil
}

func (r *MissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.store.missionIndex(id); i >= 0 {
		r.store.missions = append(r.store.missions[:i], r.store.missions[i+1:]...)
	}
	return nil
}

func (r *MissionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterMissions(r.store.missions, specs)
	if len(matched) == 0 {
		return nil, nil
	}
	copied := *matched[0]
	return &copied, nil
}

func (r *MissionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterMissions(r.store.missions, specs)
	out := make([]*entity.Mission, 0, len(matched))
	for _, m := range matched {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MissionRepository) CreateObjective(ctx context.Context, objective *entity.Objective) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *objective
	r.store.objectives = append(r.store.objectives, &copied)
	return nil
}

func (r *MissionRepository) UpdateObjective(ctx context.Context, objective *entity.Objective) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.store.objectiveIndex(objective.Id); i >= 0 {
		copied := *objective
		r.store.objectives[i] = &copied
	}
	return nil
}

func (r *MissionRepository) FindObjectives(ctx context.Context, specs ...specification.Specification) ([]*entity.Objective, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := filterObjectives(r.store.objectives, specs)
	out := make([]*entity.Objective, 0, len(matched))
	for _, o := range matched {
		copied := *o
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MissionRepository) DeleteObjectivesByMissionId(ctx context.Context, missionId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.objectives[:0]
	for _, o := range r.store.objectives {
		if o.MissionId != missionId {
			kept = append(kept, o)
		}
	}
	r.store.objectives = kept
	return nil
}

func filterMissions(missions []*entity.Mission, specs []specification.Specification) []*entity.Mission {
	matched := append([]*entity.Mission(nil), missions...)
	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			matched = keepMissions(matched, func(m *entity.Mission) bool { return m.Id == s.ID })
		case specification.OrderByCreatedAtAsc:
			sort.SliceStable(matched, func(i, j int) bool {
				return matched[i].CreatedAt.Before(matched[j].CreatedAt)
			})
		case specification.OrderByUpdatedAtDesc:
			sort.SliceStable(matched, func(i, j int) bool {
				ti, tj := matched[i].CreatedAt, matched[j].CreatedAt
				if matched[i].UpdatedAt != nil {
					ti = *matched[i].UpdatedAt
				}
				if matched[j].UpdatedAt != nil {
					tj = *matched[j].UpdatedAt
				}
				return ti.After(tj)
			})
		case specification.Limit:
			limit = s.N
		}
	}
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func keepMissions(missions []*entity.Mission, pred func(*entity.Mission) bool) []*entity.Mission {
	out := missions[:0]
	for _, m := range missions {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

func filterObjectives(objectives []*entity.Objective, specs []specification.Specification) []*entity.Objective {
	matched := append([]*entity.Objective(nil), objectives...)
	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			matched = keepObjectives(matched, func(o *entity.Objective) bool { return o.Id == s.ID })
		case specification.ByMissionID:
			matched = keepObjectives(matched, func(o *entity.Objective) bool { return o.MissionId == s.MissionID })
		case specification.PendingOnly:
			matched = keepObjectives(matched, func(o *entity.Objective) bool { return !o.Completed })
		case specification.Limit:
			limit = s.N
		}
	}
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func keepObjectives(objectives []*entity.Objective, pred func(*entity.Objective) bool) []*entity.Objective {
	out := objectives[:0]
	for _, o := range objectives {
		if pred(o) {
			out = append(out, o)
		}
	}
	return out
}
