package comments

import (
	"context"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a comments repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *repository) ListByBlogger(ctx context.Context, bloggerID int64) ([]models.Comment, error) {
	return r.list(ctx, "blogger_id = ?", bloggerID)
}

func (r *repository) ListByCounterparty(ctx context.Context, counterpartyID int64) ([]models.Comment, error) {
	return r.list(ctx, "counterparty_id = ?", counterpartyID)
}

func (r *repository) ListByPlacement(ctx context.Context, placementID int64) ([]models.Comment, error) {
	return r.list(ctx, "placement_id = ?", placementID)
}

// ListForCounterpartyThread merges the counterparty's own comments with those
// of its linked bloggers into one thread, newest first.
func (r *repository) ListForCounterpartyThread(ctx context.Context, counterpartyID int64, bloggerIDs []int64) ([]models.Comment, error) {
	query := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC")

	if len(bloggerIDs) > 0 {
		query = query.Where("counterparty_id = ? OR blogger_id IN ?", counterpartyID, bloggerIDs)
	} else {
		query = query.Where("counterparty_id = ?", counterpartyID)
	}

	var rows []models.Comment
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) list(ctx context.Context, query string, arg int64) ([]models.Comment, error) {
	var rows []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where(query, arg).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
