package models

import "time"

// Comment is a free-text note or a system-generated audit entry.
type Comment struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	AuthorID       int64     `gorm:"column:author_id;not null"`
	Body           string    `gorm:"column:body;type:text;not null"`
	BloggerID      *int64    `gorm:"column:blogger_id;index"`
	CounterpartyID *int64    `gorm:"column:counterparty_id;index"`
	PlacementID    *int64    `gorm:"column:placement_id;index"`
	IsSystem       bool      `gorm:"column:is_system;not null;default:false"`
	Author         *User     `gorm:"foreignKey:AuthorID"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
