package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Name                string     `gorm:"type:varchar(100);not null"`
	PasswordHash        string     `gorm:"type:varchar(255);not null"`
	ResetToken          *string    `gorm:"type:varchar(64);index:idx_users_reset_token"`
	ResetTokenExpiresAt *time.Time `gorm:"index:idx_users_reset_token"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Hearts []UserHeartModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserHeartModel mirrors 'user_hearts', the favorite stores of a user.
type UserHeartModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserHeartModel) TableName() string {
	return "user_hearts"
}
