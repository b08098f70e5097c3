package models

import (
	"time"

	"github.com/lestahub/lestahub-backend/pkg/enums"
)

// User represents a team member account.
type User struct {
	ID           int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string           `gorm:"column:name;type:text;not null"`
	Email        string           `gorm:"column:email;type:text;not null;uniqueIndex"`
	Role         enums.UserRole   `gorm:"column:role;type:text;not null;default:'MANAGER'"`
	Status       enums.UserStatus `gorm:"column:status;type:text;not null;default:'INVITED'"`
	PasswordHash *string          `gorm:"column:password_hash"`
	InviteToken  *string          `gorm:"column:invite_token"`
	LastLoginAt  *time.Time       `gorm:"column:last_login_at"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
