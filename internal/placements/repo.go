package placements

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
	"github.com/lestahub/lestahub-backend/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a placements repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, placement *models.Placement) (*models.Placement, error) {
	if err := r.db.WithContext(ctx).Create(placement).Error; err != nil {
		return nil, err
	}
	return placement, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Placement, error) {
	var placement models.Placement
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placement).Error
	if err != nil {
		return nil, err
	}
	return &placement, nil
}

func (r *repository) FindDetail(ctx context.Context, id int64) (*models.Placement, error) {
	var placement models.Placement
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Blogger").
		Preload("Counterparty").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments.Author").
		Where("id = ?", id).
		First(&placement).Error
	if err != nil {
		return nil, err
	}
	return &placement, nil
}

func (r *repository) List(ctx context.Context, filters Filters) ([]models.Placement, error) {
	query := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Blogger").
		Preload("Counterparty")

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filters.CampaignID)
	}
	if filters.BloggerID != nil {
		query = query.Where("blogger_id = ?", *filters.BloggerID)
	}
	if filters.CounterpartyID != nil {
		query = query.Where("counterparty_id = ?", *filters.CounterpartyID)
	}

	var rows []models.Placement
	err := query.
		Order("placement_date DESC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Save(ctx context.Context, placement *models.Placement) error {
	return r.db.WithContext(ctx).Save(placement).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Placement{}, id).Error
}

// MarkOverdue flips every paid placement whose date has passed without a
// publication. The predicate re-reads status so rows that already moved on
// are left untouched.
func (r *repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Placement{}).
		Where("status = ? AND placement_date < ?", enums.PlacementStatusAwaitingPublication, now).
		Update("status", enums.PlacementStatusOverdue)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
