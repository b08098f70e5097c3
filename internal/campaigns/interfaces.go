package campaigns

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Filters narrows campaign listings.
type Filters struct {
	Product *enums.ProductCode
	Status  *enums.CampaignStatus
	Search  string
}

// SpendTotal aggregates a campaign's placements: committed spend plus the
// total placement count regardless of status.
type SpendTotal struct {
	Spend      decimal.Decimal
	Placements int64
}

// Repository defines persistence for campaigns.
type Repository interface {
	Create(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error)
	FindByID(ctx context.Context, id int64) (*models.Campaign, error)
	FindDetail(ctx context.Context, id int64) (*models.Campaign, error)
	List(ctx context.Context, filters Filters) ([]models.Campaign, error)
	Save(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error)
	SpendTotals(ctx context.Context, campaignIDs []int64) (map[int64]SpendTotal, error)
}
