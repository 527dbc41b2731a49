package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. The PostGIS geography used by proximity
// queries is computed from longitude/latitude and backed by an expression index
// created in the migration.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex:idx_stores_slug;not null"`
	Description string    `gorm:"type:text"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Address     string    `gorm:"type:text;not null"`
	PhotoRef    string    `gorm:"type:varchar(255)"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Tags []StoreTagModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreTagModel mirrors 'store_tags'.
type StoreTagModel struct {
	StoreID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tag     string    `gorm:"type:varchar(64);primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreTagModel) TableName() string {
	return "store_tags"
}
