package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Slug      string         `gorm:"size:100;not null;index" json:"slug"`
	Image     string         `gorm:"size:255" json:"image"`
	Status    Status         `gorm:"size:20;not null;default:Available" json:"status"`
	Mappings  []Mapping      `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Products  []Product      `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Subcategory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Slug      string         `gorm:"size:100;not null;index" json:"slug"`
	Image     string         `gorm:"size:255" json:"image"`
	Status    Status         `gorm:"size:20;not null;default:Available" json:"status"`
	Mappings  []Mapping      `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Products  []Product      `gorm:"foreignKey:SubcategoryID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Mapping is one permitted category/subcategory pairing. The pair is unique
// across all rows, active or not; an inactive row is reactivated instead of
// duplicated.
type Mapping struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CategoryID    uint      `gorm:"not null;uniqueIndex:idx_mapping_pair,priority:1" json:"category_id"`
	SubcategoryID uint      `gorm:"not null;uniqueIndex:idx_mapping_pair,priority:2;index" json:"subcategory_id"`
	Status        Status    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m *Mapping) IsActive() bool {
	return m.Status.IsActive()
}
