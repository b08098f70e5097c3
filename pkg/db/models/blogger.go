package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// Blogger is an influencer profile with reach metrics.
type Blogger struct {
	ID             int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string                `gorm:"column:name;type:text;not null"`
	ProfileURL     string                `gorm:"column:profile_url;type:text;not null"`
	SocialPlatform string                `gorm:"column:social_platform;type:text;not null"`
	Followers      *int64                `gorm:"column:followers"`
	AverageReach   *int64                `gorm:"column:average_reach"`
	PrimaryChannel *enums.ContactChannel `gorm:"column:primary_channel;type:text"`
	PrimaryContact *string               `gorm:"column:primary_contact"`
	AlanbaseSub3   *string               `gorm:"column:alanbase_sub3"`
	Topics         pq.StringArray        `gorm:"column:topics;type:text[]"`
	PricePresets   []PricePreset         `gorm:"foreignKey:BloggerID;constraint:OnDelete:CASCADE"`
	Counterparties []Counterparty        `gorm:"many2many:blogger_counterparties"`
	Placements     []Placement           `gorm:"foreignKey:BloggerID"`
	Comments       []Comment             `gorm:"foreignKey:BloggerID"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
