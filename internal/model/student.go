package model

import "time"

// Student is a tenant of the hostel.
type Student struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:256;not null" json:"name"`
	Mobile          string    `gorm:"size:32;not null" json:"mobile"`
	Email           *string   `gorm:"size:256" json:"email"`
	IDProofType     *string   `gorm:"size:64" json:"idProofType"`
	IDProofNumber   *string   `gorm:"size:128" json:"idProofNumber"`
	IDProofPhotoURL *string   `json:"idProofPhotoUrl"`
	GuardianName    *string   `gorm:"size:256" json:"guardianName"`
	GuardianMobile  *string   `gorm:"size:32" json:"guardianMobile"`
	Address         *string   `json:"address"`
	PhotoURL        *string   `json:"photoUrl"`
	Status          string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`

	// Associations
	Allocations []Allocation `gorm:"foreignKey:StudentID" json:"-"`
	Payments    []Payment    `gorm:"foreignKey:StudentID" json:"-"`
}

// Student states.
const (
	StudentActive   = "active"
	StudentVacated  = "vacated"
	StudentExpelled = "expelled"
)
