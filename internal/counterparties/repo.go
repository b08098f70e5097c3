package counterparties

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a counterparties repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, counterparty *models.Counterparty) (*models.Counterparty, error) {
	if err := r.db.WithContext(ctx).Omit("Bloggers", "Placements").Create(counterparty).Error; err != nil {
		return nil, err
	}
	return counterparty, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Counterparty, error) {
	var counterparty models.Counterparty
	err := r.db.WithContext(ctx).
		Preload("Bloggers").
		First(&counterparty, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &counterparty, nil
}

// FindDetail loads the counterparty with its linked bloggers and placement
// history including campaign and blogger context.
func (r *repository) FindDetail(ctx context.Context, id int64) (*models.Counterparty, error) {
	var counterparty models.Counterparty
	err := r.db.WithContext(ctx).
		Preload("Bloggers").
		Preload("Placements.Campaign").
		Preload("Placements.Blogger").
		First(&counterparty, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &counterparty, nil
}

func (r *repository) List(ctx context.Context, filters Filters) ([]models.Counterparty, error) {
	query := r.db.WithContext(ctx).
		Preload("Bloggers").
		Order("created_at DESC")

	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Relationship != nil {
		query = query.Where("relationship_type = ?", *filters.Relationship)
	}
	if filters.Active != nil {
		query = query.Where("is_active = ?", *filters.Active)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name LIKE ? OR inn LIKE ?", pattern, pattern)
	}

	var rows []models.Counterparty
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Save(ctx context.Context, counterparty *models.Counterparty) (*models.Counterparty, error) {
	err := r.db.WithContext(ctx).
		Omit("Bloggers", "Placements").
		Save(counterparty).Error
	if err != nil {
		return nil, err
	}
	return counterparty, nil
}

func (r *repository) ReplaceBloggers(ctx context.Context, counterpartyID int64, bloggerIDs []int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("counterparty_id = ?", counterpartyID).Delete(&models.BloggerCounterparty{}).Error; err != nil {
		return err
	}
	if len(bloggerIDs) == 0 {
		return nil
	}
	links := make([]models.BloggerCounterparty, 0, len(bloggerIDs))
	for _, bloggerID := range bloggerIDs {
		links = append(links, models.BloggerCounterparty{BloggerID: bloggerID, CounterpartyID: counterpartyID})
	}
	return db.Create(&links).Error
}

func (r *repository) LinkedBloggerIDs(ctx context.Context, counterpartyID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.BloggerCounterparty{}).
		Where("counterparty_id = ?", counterpartyID).
		Pluck("blogger_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
