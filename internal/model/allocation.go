package model

import "time"

// Allocation records a student occupying a bed. A nil EndDate means the stay is open.
//
// At most one allocation per bed may be active; the partial unique index
// idx_allocations_active_bed is created by db.Migrate.
type Allocation struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	StudentID int64     `gorm:"index;not null" json:"studentId"`
	BedID     int64     `gorm:"index;not null" json:"bedId"`
	StartDate Date      `gorm:"not null" json:"startDate"`
	EndDate   *Date     `json:"endDate"`
	Status    string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Allocation states.
const (
	AllocationActive  = "active"
	AllocationVacated = "vacated"
)
