package model

import "time"

// Hostel is a branch building owned by an organization.
type Hostel struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	OrganizationID int64     `gorm:"index;not null" json:"organizationId"`
	Name           string    `gorm:"size:256;not null" json:"name"`
	Location       string    `gorm:"size:512;not null" json:"location"`
	Type           string    `gorm:"size:16;not null" json:"type"`
	Status         string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`

	// Associations
	Floors []Floor `gorm:"foreignKey:HostelID" json:"-"`
}

// Hostel types.
const (
	HostelBoys  = "Boys"
	HostelGirls = "Girls"
	HostelCoed  = "Co-ed"
)

// Floor is a level of a hostel. FloorNumber is a free-text label ("Ground", "1").
type Floor struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	HostelID    int64     `gorm:"not null;uniqueIndex:idx_floor_hostel,priority:1" json:"hostelId"`
	FloorNumber string    `gorm:"size:64;not null;uniqueIndex:idx_floor_hostel,priority:2" json:"floorNumber"`
	CreatedAt   time.Time `json:"createdAt"`

	// Associations
	Rooms []Room `gorm:"foreignKey:FloorID" json:"-"`
}
