package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Status    Status    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Color struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	HexCode   string    `gorm:"size:7" json:"hex_code"`
	Status    Status    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Description   string           `gorm:"type:text" json:"description"`
	CategoryID    uint             `gorm:"not null;index" json:"category_id"`
	SubcategoryID uint             `gorm:"not null;index" json:"subcategory_id"`
	Image         string           `gorm:"size:255" json:"image"`
	Status        Status           `gorm:"size:20;not null;default:Available" json:"status"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

type ProductVariant struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Sku       string          `gorm:"size:100;not null;uniqueIndex" json:"sku"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Status    Status          `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AttributeVariant binds one product variant to a brand, a color and a size type.
type AttributeVariant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VariantID uint      `gorm:"not null;uniqueIndex" json:"variant_id"`
	BrandID   uint      `gorm:"not null;index" json:"brand_id"`
	ColorID   uint      `gorm:"not null;index" json:"color_id"`
	SizeID    uint      `gorm:"not null;index" json:"size_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
