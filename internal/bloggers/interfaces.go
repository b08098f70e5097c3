package bloggers

import (
	"context"

	"gorm.io/gorm"

	"github.com/lestahub/lestahub-backend/pkg/db/models"
)

// Filters narrows blogger listings.
type Filters struct {
	Search         string
	Social         string
	CounterpartyID *int64
}

// Repository defines persistence for blogger profiles and their presets.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, blogger *models.Blogger) (*models.Blogger, error)
	FindByID(ctx context.Context, id int64) (*models.Blogger, error)
	FindDetail(ctx context.Context, id int64) (*models.Blogger, error)
	List(ctx context.Context, filters Filters) ([]models.Blogger, error)
	Save(ctx context.Context, blogger *models.Blogger) (*models.Blogger, error)
	ReplaceCounterparties(ctx context.Context, bloggerID int64, counterpartyIDs []int64) error

	CreatePreset(ctx context.Context, preset *models.PricePreset) (*models.PricePreset, error)
	FindPresetByID(ctx context.Context, id int64) (*models.PricePreset, error)
	ListPresets(ctx context.Context, bloggerID *int64) ([]models.PricePreset, error)
	SavePreset(ctx context.Context, preset *models.PricePreset) (*models.PricePreset, error)
	DeletePreset(ctx context.Context, id int64) error
}
