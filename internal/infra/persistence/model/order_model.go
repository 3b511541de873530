package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ContactID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber string          `gorm:"type:varchar(80)"`
	Status      string          `gorm:"type:varchar(20);not null;default:'new'"`
	Notes       string          `gorm:"type:text"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	// Delivery tracking for the most recent email send attempt.
	EmailSentToCustomer bool       `gorm:"not null;default:false"`
	EmailSentToInternal bool       `gorm:"not null;default:false"`
	EmailSentAt         *time.Time `gorm:""`
	EmailLastError      string     `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`

	Contact *ContactModel       `gorm:"foreignKey:ContactID"`
	Items   []*OrderItemModel   `gorm:"foreignKey:OrderID"`
	Address *OrderAddressModel  `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table: a denormalized product
// snapshot. ProductID is nullable so deleting a catalog product leaves
// order history intact.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"`
	ProductName string          `gorm:"type:varchar(160);not null"`
	SKU         string          `gorm:"type:varchar(60)"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity    int             `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderAddressModel mirrors the 'order_addresses' table: the immutable
// postal snapshot taken at checkout time.
type OrderAddressModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Label    string    `gorm:"type:varchar(80)"`
	Address1 string    `gorm:"type:varchar(200);not null"`
	Address2 string    `gorm:"type:varchar(200)"`
	City     string    `gorm:"type:varchar(120)"`
	County   string    `gorm:"type:varchar(120)"`
	Postcode string    `gorm:"type:varchar(30)"`
	Country  string    `gorm:"type:varchar(80)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderAddressModel) TableName() string {
	return "order_addresses"
}
