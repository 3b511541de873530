package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'shop_products' table (the live catalog).
type ProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string          `gorm:"type:varchar(140);not null"`
	Slug      string          `gorm:"type:varchar(160);unique;not null"`
	SKU       string          `gorm:"type:varchar(60);index"`
	Category  string          `gorm:"type:varchar(20);not null;default:'parts'"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ShowPrice bool            `gorm:"not null;default:true"`
	InStock   bool            `gorm:"not null;default:true"`
	IsActive  bool            `gorm:"not null;default:true;index"`
	SortOrder int             `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "shop_products"
}
