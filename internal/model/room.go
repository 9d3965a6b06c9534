package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room belongs to a floor. Capacity is the intended bed count.
type Room struct {
	ID         int64           `gorm:"primaryKey" json:"id"`
	FloorID    int64           `gorm:"not null;uniqueIndex:idx_room_floor,priority:1" json:"floorId"`
	RoomNumber string          `gorm:"size:64;not null;uniqueIndex:idx_room_floor,priority:2" json:"roomNumber"`
	Capacity   int             `gorm:"not null" json:"capacity"`
	Type       string          `gorm:"size:16;default:Non-AC" json:"type"`
	RentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rentAmount"`
	CreatedAt  time.Time       `json:"createdAt"`

	// Associations
	Beds []Bed `gorm:"foreignKey:RoomID" json:"-"`
}

// Room types.
const (
	RoomAC    = "AC"
	RoomNonAC = "Non-AC"
)

// Bed is the unit of occupancy. Status mirrors the allocation ledger.
type Bed struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	RoomID    int64     `gorm:"not null;uniqueIndex:idx_bed_room,priority:1" json:"roomId"`
	BedNumber string    `gorm:"size:64;not null;uniqueIndex:idx_bed_room,priority:2" json:"bedNumber"`
	Status    string    `gorm:"size:16;not null;default:available;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	// Associations
	Allocations []Allocation `gorm:"foreignKey:BedID" json:"-"`
}

// Bed states.
const (
	BedAvailable   = "available"
	BedOccupied    = "occupied"
	BedMaintenance = "maintenance"
)
