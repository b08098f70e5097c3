package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePreset is a fixed-price offer template attached to a blogger.
type PricePreset struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	BloggerID   int64           `gorm:"column:blogger_id;not null;index"`
	Title       string          `gorm:"column:title;type:text;not null"`
	Description *string         `gorm:"column:description"`
	Cost        decimal.Decimal `gorm:"column:cost;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
