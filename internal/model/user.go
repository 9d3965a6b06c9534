package model

import "time"

// User is a dashboard account. Credentials live with the auth provider.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:256;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:256" json:"name"`
	Role      string    `gorm:"size:32;not null;default:student" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
