package bloggers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a bloggers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, blogger *models.Blogger) (*models.Blogger, error) {
	if err := r.db.WithContext(ctx).Create(blogger).Error; err != nil {
		return nil, err
	}
	return blogger, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Blogger, error) {
	var blogger models.Blogger
	err := r.db.WithContext(ctx).
		Preload("Counterparties").
		Preload("PricePresets").
		First(&blogger, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogger, nil
}

// FindDetail loads the profile together with its placement history and the
// comment thread, newest comments first.
func (r *repository) FindDetail(ctx context.Context, id int64) (*models.Blogger, error) {
	var blogger models.Blogger
	err := r.db.WithContext(ctx).
		Preload("Counterparties").
		Preload("PricePresets").
		Preload("Placements.Campaign").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments.Author").
		First(&blogger, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogger, nil
}

func (r *repository) List(ctx context.Context, filters Filters) ([]models.Blogger, error) {
	query := r.db.WithContext(ctx).
		Preload("Counterparties").
		Preload("PricePresets").
		Order("created_at DESC")

	if filters.Search != "" {
		query = query.Where("name LIKE ?", "%"+filters.Search+"%")
	}
	if filters.Social != "" {
		query = query.Where("social_platform = ?", filters.Social)
	}
	if filters.CounterpartyID != nil {
		query = query.
			Joins("JOIN blogger_counterparties ON blogger_counterparties.blogger_id = bloggers.id").
			Where("blogger_counterparties.counterparty_id = ?", *filters.CounterpartyID)
	}

	var rows []models.Blogger
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Save(ctx context.Context, blogger *models.Blogger) (*models.Blogger, error) {
	err := r.db.WithContext(ctx).
		Omit("Counterparties", "PricePresets", "Placements", "Comments").
		Save(blogger).Error
	if err != nil {
		return nil, err
	}
	return blogger, nil
}

func (r *repository) ReplaceCounterparties(ctx context.Context, bloggerID int64, counterpartyIDs []int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("blogger_id = ?", bloggerID).Delete(&models.BloggerCounterparty{}).Error; err != nil {
		return err
	}
	if len(counterpartyIDs) == 0 {
		return nil
	}
	links := make([]models.BloggerCounterparty, 0, len(counterpartyIDs))
	for _, counterpartyID := range counterpartyIDs {
		links = append(links, models.BloggerCounterparty{BloggerID: bloggerID, CounterpartyID: counterpartyID})
	}
	return db.Create(&links).Error
}

func (r *repository) CreatePreset(ctx context.Context, preset *models.PricePreset) (*models.PricePreset, error) {
	if err := r.db.WithContext(ctx).Create(preset).Error; err != nil {
		return nil, err
	}
	return preset, nil
}

func (r *repository) FindPresetByID(ctx context.Context, id int64) (*models.PricePreset, error) {
	var preset models.PricePreset
	err := r.db.WithContext(ctx).First(&preset, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

func (r *repository) ListPresets(ctx context.Context, bloggerID *int64) ([]models.PricePreset, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if bloggerID != nil {
		query = query.Where("blogger_id = ?", *bloggerID)
	}
	var rows []models.PricePreset
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) SavePreset(ctx context.Context, preset *models.PricePreset) (*models.PricePreset, error) {
	if err := r.db.WithContext(ctx).Save(preset).Error; err != nil {
		return nil, err
	}
	return preset, nil
}

func (r *repository) DeletePreset(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.PricePreset{}, "id = ?", id).Error
}
