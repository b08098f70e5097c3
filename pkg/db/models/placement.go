package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Placement is a single piece of sponsored content with its own
// approval/payment lifecycle.
type Placement struct {
	ID             int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	CampaignID     int64                 `gorm:"column:campaign_id;not null;index"`
	BloggerID      int64                 `gorm:"column:blogger_id;not null;index"`
	CounterpartyID int64                 `gorm:"column:counterparty_id;not null;index"`
	CreatedByID    int64                 `gorm:"column:created_by_id;not null"`
	PlacementType  enums.PlacementType   `gorm:"column:placement_type;type:text;not null"`
	PricingModel   enums.PricingModel    `gorm:"column:pricing_model;type:text;not null"`
	PaymentTerms   enums.PaymentTerms    `gorm:"column:payment_terms;type:text;not null"`
	Status         enums.PlacementStatus `gorm:"column:status;type:text;not null;default:'PLANNED';index"`
	PlacementDate  *time.Time            `gorm:"column:placement_date"`
	Fee            *decimal.Decimal      `gorm:"column:fee;type:numeric(12,2)"`
	PlacementURL   *string               `gorm:"column:placement_url"`
	ScreenshotURL  *string               `gorm:"column:screenshot_url"`
	TrackingLink   *string               `gorm:"column:tracking_link"`
	AlanbaseSub1   *string               `gorm:"column:alanbase_sub1"`
	EridToken      *string               `gorm:"column:erid_token"`
	Views          *int64                `gorm:"column:views"`
	Likes          *int64                `gorm:"column:likes"`
	CommentsCount  *int64                `gorm:"column:comments_count"`
	Shares         *int64                `gorm:"column:shares"`
	ROI            *decimal.Decimal      `gorm:"column:roi;type:numeric(12,2)"`
	EngagementRate *decimal.Decimal      `gorm:"column:engagement_rate;type:numeric(12,2)"`
	Campaign       *Campaign             `gorm:"foreignKey:CampaignID"`
	Blogger        *Blogger              `gorm:"foreignKey:BloggerID"`
	Counterparty   *Counterparty         `gorm:"foreignKey:CounterpartyID"`
	CreatedBy      *User                 `gorm:"foreignKey:CreatedByID"`
	Comments       []Comment             `gorm:"foreignKey:PlacementID"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
