package campaigns

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

var committedStatuses = []enums.PlacementStatus{
	enums.PlacementStatusAgreed,
	enums.PlacementStatusAwaitingPayment,
	enums.PlacementStatusAwaitingPublication,
	enums.PlacementStatusPublished,
	enums.PlacementStatusOverdue,
	enums.PlacementStatusClosed,
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a campaigns repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	if err := r.db.WithContext(ctx).Omit("Owner", "Placements").Create(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// FindDetail loads the campaign with its full placement roster.
func (r *repository) FindDetail(ctx context.Context, id int64) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Placements.Blogger").
		Preload("Placements.Counterparty").
		First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *repository) List(ctx context.Context, filters Filters) ([]models.Campaign, error) {
	query := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC")

	if filters.Product != nil {
		query = query.Where("product = ?", *filters.Product)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Search != "" {
		query = query.Where("name LIKE ?", "%"+filters.Search+"%")
	}

	var rows []models.Campaign
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Save(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	err := r.db.WithContext(ctx).
		Omit("Owner", "Placements").
		Save(campaign).Error
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// SpendTotals sums committed placement fees and counts all placements per
// campaign in two grouped queries.
func (r *repository) SpendTotals(ctx context.Context, campaignIDs []int64) (map[int64]SpendTotal, error) {
	totals := make(map[int64]SpendTotal, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return totals, nil
	}

	type spendRow struct {
		CampaignID int64
		Total      decimal.Decimal
	}
	var spendRows []spendRow
	err := r.db.WithContext(ctx).
		Model(&models.Placement{}).
		Select("campaign_id, COALESCE(SUM(fee), 0) AS total").
		Where("campaign_id IN ?", campaignIDs).
		Where("status IN ?", committedStatuses).
		Group("campaign_id").
		Scan(&spendRows).Error
	if err != nil {
		return nil, err
	}

	type countRow struct {
		CampaignID int64
		Total      int64
	}
	var countRows []countRow
	err = r.db.WithContext(ctx).
		Model(&models.Placement{}).
		Select("campaign_id, COUNT(*) AS total").
		Where("campaign_id IN ?", campaignIDs).
		Group("campaign_id").
		Scan(&countRows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range spendRows {
		entry := totals[row.CampaignID]
		entry.Spend = row.Total
		totals[row.CampaignID] = entry
	}
	for _, row := range countRows {
		entry := totals[row.CampaignID]
		entry.Placements = row.Total
		totals[row.CampaignID] = entry
	}
	return totals, nil
}
