package models

import (
	"time"

	"gorm.io/gorm"
)

type SizeKind string

const (
	SizeKindClothing SizeKind = "clothing"
	SizeKindShoes    SizeKind = "shoes"
)

type Gender struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Status    Status    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SizeClothing struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SizeValue string         `gorm:"size:20;not null" json:"size_value"`
	GenderID  uint           `gorm:"not null;index" json:"gender_id"`
	Gender    *Gender        `gorm:"foreignKey:GenderID" json:"gender,omitempty"`
	Status    Status         `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SizeClothing) TableName() string {
	return "size_clothing"
}

type SizeShoes struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	SizeValue    string            `gorm:"size:20;not null" json:"size_value"`
	GenderID     uint              `gorm:"not null;index" json:"gender_id"`
	Gender       *Gender           `gorm:"foreignKey:GenderID" json:"gender,omitempty"`
	Measurements map[string]string `gorm:"serializer:json;type:text" json:"measurements"`
	Status       Status            `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (SizeShoes) TableName() string {
	return "size_shoes"
}

// SizeRef points a SizeType at exactly one concrete size definition.
// The only implementations are ClothingSizeRef and ShoeSizeRef.
type SizeRef interface {
	Kind() SizeKind
	RefID() uint
	sizeRef()
}

type ClothingSizeRef struct {
	ID uint
}

func (r ClothingSizeRef) Kind() SizeKind { return SizeKindClothing }
func (r ClothingSizeRef) RefID() uint    { return r.ID }
func (ClothingSizeRef) sizeRef()         {}

type ShoeSizeRef struct {
	ID uint
}

func (r ShoeSizeRef) Kind() SizeKind { return SizeKindShoes }
func (r ShoeSizeRef) RefID() uint    { return r.ID }
func (ShoeSizeRef) sizeRef()         {}

// SizeType keeps the two nullable columns of the size_types table. Use Ref
// and SetRef rather than touching the foreign keys directly.
type SizeType struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClothingSizeID *uint     `gorm:"index" json:"clothing_size_id"`
	ShoeSizeID     *uint     `gorm:"index" json:"shoe_size_id"`
	CategoryID     uint      `gorm:"not null;index" json:"category_id"`
	Status         Status    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewSizeType(categoryID uint, ref SizeRef) *SizeType {
	t := &SizeType{CategoryID: categoryID, Status: StatusAvailable}
	t.SetRef(ref)
	return t
}

// Ref returns the active size reference. ok is false when both or neither
// foreign key is set.
func (t *SizeType) Ref() (ref SizeRef, ok bool) {
	switch {
	case t.ClothingSizeID != nil && t.ShoeSizeID == nil:
		return ClothingSizeRef{ID: *t.ClothingSizeID}, true
	case t.ShoeSizeID != nil && t.ClothingSizeID == nil:
		return ShoeSizeRef{ID: *t.ShoeSizeID}, true
	default:
		return nil, false
	}
}

// SetRef clears both foreign keys and sets the one matching ref. A nil ref
// leaves both unset.
func (t *SizeType) SetRef(ref SizeRef) {
	t.ClothingSizeID = nil
	t.ShoeSizeID = nil
	switch r := ref.(type) {
	case ClothingSizeRef:
		id := r.ID
		t.ClothingSizeID = &id
	case ShoeSizeRef:
		id := r.ID
		t.ShoeSizeID = &id
	}
}
