package comments

import (
	"context"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

// Repository defines persistence operations for comments.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	ListByBlogger(ctx context.Context, bloggerID int64) ([]models.Comment, error)
	ListByCounterparty(ctx context.Context, counterpartyID int64) ([]models.Comment, error)
	ListByPlacement(ctx context.Context, placementID int64) ([]models.Comment, error)
	ListForCounterpartyThread(ctx context.Context, counterpartyID int64, bloggerIDs []int64) ([]models.Comment, error)
}
