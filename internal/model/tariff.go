package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tariff is a pricing rule, organization-wide or for one hostel.
// SharingType is only set for share-wise tariffs.
type Tariff struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	OrganizationID int64           `gorm:"index;not null" json:"organizationId"`
	HostelID       *int64          `gorm:"index" json:"hostelId"`
	RoomType       string          `gorm:"size:32;not null" json:"roomType"`
	TariffType     string          `gorm:"size:16;not null" json:"tariffType"`
	SharingType    *int            `json:"sharingType"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	EffectiveDate  Date            `gorm:"not null" json:"effectiveDate"`
	Status         string          `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Tariff types.
const (
	TariffRoomWise  = "room_wise"
	TariffShareWise = "share_wise"
)
