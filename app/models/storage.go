package models

import "time"

type Zone struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Status    Status    `gorm:"size:20;not null;default:Available" json:"status"`
	Racks     []Rack    `gorm:"foreignKey:ZoneID" json:"racks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Rack struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ZoneID    uint       `gorm:"not null;uniqueIndex:idx_rack_code,priority:1" json:"zone_id"`
	Code      string     `gorm:"size:20;not null;uniqueIndex:idx_rack_code,priority:2" json:"code"`
	Status    Status     `gorm:"size:20;not null;default:Available" json:"status"`
	Locations []Location `gorm:"foreignKey:RackID" json:"locations,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Location is a single addressable bin. Code is zone-rack-bin, e.g. "A-R01-03".
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RackID    uint      `gorm:"not null;index" json:"rack_id"`
	Code      string    `gorm:"size:60;not null;uniqueIndex" json:"code"`
	Status    Status    `gorm:"size:20;not null;default:Available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MovementType string

const (
	MovementIn       MovementType = "in"
	MovementOut      MovementType = "out"
	MovementTransfer MovementType = "transfer"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer:
		return true
	}
	return false
}

// StockMovement records that a quantity moved; it does not maintain balances.
type StockMovement struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Reference    string       `gorm:"size:36;not null;uniqueIndex" json:"reference"`
	VariantID    uint         `gorm:"not null;index" json:"variant_id"`
	LocationID   uint         `gorm:"not null;index" json:"location_id"`
	ToLocationID *uint        `gorm:"index" json:"to_location_id,omitempty"`
	MovementType MovementType `gorm:"size:20;not null" json:"movement_type"`
	Quantity     int          `gorm:"not null" json:"quantity"`
	Note         string       `gorm:"size:255" json:"note"`
	CreatedAt    time.Time    `json:"created_at"`
}
