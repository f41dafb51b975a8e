package contract

import (
	"context"

	"geotagger-be/internal/entity"
	"geotagger-be/internal/repository/specification"

	"github.com/google/uuid"
)

// FolderRepository persists location folders. FindAll returns the whole
// collection snapshot the proximity resolver scans; the resolver itself
// never touches storage.
type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
