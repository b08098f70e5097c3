package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

var completedStatuses = []enums.PlacementStatus{
	enums.PlacementStatusPublished,
	enums.PlacementStatusClosed,
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a dashboard repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CompletedPlacements(ctx context.Context, start, end time.Time, product *enums.ProductCode) ([]models.Placement, error) {
	query := r.db.WithContext(ctx).
		Preload("Blogger").
		Preload("Counterparty").
		Preload("Campaign").
		Where("placements.status IN ?", completedStatuses).
		Where("placements.placement_date >= ? AND placements.placement_date <= ?", start, end)

	if product != nil {
		query = query.
			Joins("JOIN campaigns ON campaigns.id = placements.campaign_id").
			Where("campaigns.product = ?", *product)
	}

	var rows []models.Placement
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ActiveCampaigns(ctx context.Context, product *enums.ProductCode) ([]models.Campaign, error) {
	query := r.db.WithContext(ctx).
		Preload("Placements").
		Where("status = ?", enums.CampaignStatusActive)

	if product != nil {
		query = query.Where("product = ?", *product)
	}

	var rows []models.Campaign
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
