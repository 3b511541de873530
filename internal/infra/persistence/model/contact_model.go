package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table. Email is the dedupe key for
// checkout upserts, so it carries a unique index.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(140);not null"`
	Company   string    `gorm:"type:varchar(180)"`
	Phone     string    `gorm:"type:varchar(60)"`
	Email     string    `gorm:"type:varchar(255);unique;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Addresses []*ContactAddressModel `gorm:"foreignKey:ContactID"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactAddressModel is the GORM struct for the 'contact_addresses' table
// (the reusable address book, distinct from order address snapshots).
type ContactAddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(80)"`
	Address1  string    `gorm:"type:varchar(200);not null"`
	Address2  string    `gorm:"type:varchar(200)"`
	City      string    `gorm:"type:varchar(120)"`
	County    string    `gorm:"type:varchar(120)"`
	Postcode  string    `gorm:"type:varchar(30)"`
	Country   string    `gorm:"type:varchar(80);default:'United Kingdom'"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactAddressModel) TableName() string {
	return "contact_addresses"
}
