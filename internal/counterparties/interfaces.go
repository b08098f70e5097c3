package counterparties

import (
	"context"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Filters narrows counterparty listings. Search matches name or INN.
type Filters struct {
	Type         *enums.CounterpartyType
	Relationship *enums.CounterpartyRelationship
	Active       *bool
	Search       string
}

// Repository defines persistence for counterparties.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, counterparty *models.Counterparty) (*models.Counterparty, error)
	FindByID(ctx context.Context, id int64) (*models.Counterparty, error)
	FindDetail(ctx context.Context, id int64) (*models.Counterparty, error)
	List(ctx context.Context, filters Filters) ([]models.Counterparty, error)
	Save(ctx context.Context, counterparty *models.Counterparty) (*models.Counterparty, error)
	ReplaceBloggers(ctx context.Context, counterpartyID int64, bloggerIDs []int64) error
	LinkedBloggerIDs(ctx context.Context, counterpartyID int64) ([]int64, error)
}
