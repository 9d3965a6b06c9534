package model

import "time"

// Organization is the tenant that owns hostels and tariffs.
type Organization struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	OwnerName string    `gorm:"size:256;not null" json:"ownerName"`
	Mobile    string    `gorm:"size:32;not null" json:"mobile"`
	Email     *string   `gorm:"size:256" json:"email"`
	Address   *string   `json:"address"`
	Status    string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	// Associations
	Hostels []Hostel `gorm:"foreignKey:OrganizationID" json:"-"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
