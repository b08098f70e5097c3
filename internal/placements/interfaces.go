package placements

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

// Repository defines persistence operations for placements.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, placement *models.Placement) (*models.Placement, error)
	FindByID(ctx context.Context, id int64) (*models.Placement, error)
	FindDetail(ctx context.Context, id int64) (*models.Placement, error)
	List(ctx context.Context, filters Filters) ([]models.Placement, error)
	Save(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id int64) error
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
