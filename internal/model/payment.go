package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a due or collected amount for a student, optionally tied to one stay.
type Payment struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	StudentID    int64           `gorm:"index;not null" json:"studentId"`
	AllocationID *int64          `gorm:"index" json:"allocationId"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type         string          `gorm:"size:16;not null" json:"type"`
	Method       *string         `gorm:"size:32" json:"method"`
	Status       string          `gorm:"size:16;not null;default:pending;index" json:"status"`
	Date         Date            `gorm:"not null;index" json:"date"`
	DueDate      *Date           `json:"dueDate"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Payment types.
const (
	PaymentRent    = "rent"
	PaymentDeposit = "deposit"
	PaymentMess    = "mess"
	PaymentOther   = "other"
)

// Payment states.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)
