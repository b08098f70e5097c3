package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Campaign groups placements under a single marketing initiative.
type Campaign struct {
	ID            int64                `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string               `gorm:"column:name;type:text;not null"`
	Product       enums.ProductCode    `gorm:"column:product;type:text;not null"`
	Goal          *string              `gorm:"column:goal"`
	Type          *string              `gorm:"column:type"`
	BudgetPlanned *decimal.Decimal     `gorm:"column:budget_planned;type:numeric(12,2)"`
	Status        enums.CampaignStatus `gorm:"column:status;type:text;not null;default:'DRAFT'"`
	StartDate     *time.Time           `gorm:"column:start_date"`
	EndDate       *time.Time           `gorm:"column:end_date"`
	OwnerID       *int64               `gorm:"column:owner_id"`
	AlanbaseSub2  *string              `gorm:"column:alanbase_sub2"`
	Owner         *User                `gorm:"foreignKey:OwnerID"`
	Placements    []Placement          `gorm:"foreignKey:CampaignID"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
