package dashboard

import (
	"context"
	"time"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Repository defines the reads backing the dashboard.
type Repository interface {
	CompletedPlacements(ctx context.Context, start, end time.Time, product *enums.ProductCode) ([]models.Placement, error)
	ActiveCampaigns(ctx context.Context, product *enums.ProductCode) ([]models.Campaign, error)
}
