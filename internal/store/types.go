package store

import (
	"github.com/shopspring/decimal"

	"hostel-management-backend/internal/model"
)

// HostelDetails is a hostel with the size of its inventory.
type HostelDetails struct {
	model.Hostel
	FloorCount int64 `json:"floorCount"`
	RoomCount  int64 `json:"roomCount"`
	BedCount   int64 `json:"bedCount"`
}

// AllocationInput is a request to place a student in a bed.
type AllocationInput struct {
	StudentID int64
	BedID     int64
	StartDate model.Date
	EndDate   *model.Date
}

// AllocationCreated is returned by CreateAllocation.
type AllocationCreated struct {
	AllocationID int64      `json:"allocationId"`
	StudentID    int64      `json:"studentId"`
	StudentName  string     `json:"studentName"`
	BedID        int64      `json:"bedId"`
	BedNumber    string     `json:"bedNumber"`
	HostelName   string     `json:"hostelName"`
	RoomNumber   string     `json:"roomNumber"`
	StartDate    model.Date `json:"startDate"`
}

// AllocationView joins an allocation with its student and bed location.
type AllocationView struct {
	AllocationID   int64       `json:"allocationId"`
	StudentID      int64       `json:"studentId"`
	StudentName    string      `json:"studentName"`
	StudentMobile  string      `json:"studentMobile"`
	BedID          int64       `json:"bedId"`
	BedNumber      string      `json:"bedNumber"`
	RoomNumber     string      `json:"roomNumber"`
	FloorNumber    string      `json:"floorNumber"`
	HostelName     string      `json:"hostelName"`
	HostelLocation string      `json:"hostelLocation"`
	StartDate      model.Date  `json:"startDate"`
	EndDate        *model.Date `json:"endDate"`
	Status         string      `json:"status"`
}

// StudentAllocationView is one stay in a student's history.
type StudentAllocationView struct {
	AllocationID int64       `json:"allocationId"`
	StudentName  string      `json:"studentName"`
	BedNumber    string      `json:"bedNumber"`
	RoomNumber   string      `json:"roomNumber"`
	FloorNumber  string      `json:"floorNumber"`
	HostelName   string      `json:"hostelName"`
	StartDate    model.Date  `json:"startDate"`
	EndDate      *model.Date `json:"endDate"`
	Status       string      `json:"status"`
}

// AvailableBed is a candidate bed for a new allocation.
type AvailableBed struct {
	BedID          int64           `json:"bedId"`
	BedNumber      string          `json:"bedNumber"`
	RoomNumber     string          `json:"roomNumber"`
	FloorNumber    string          `json:"floorNumber"`
	HostelName     string          `json:"hostelName"`
	HostelLocation string          `json:"hostelLocation"`
	HostelType     string          `json:"hostelType"`
	RentAmount     decimal.Decimal `json:"rentAmount"`
}

// Occupancy is the bed roll-up for one scope. Available is Total minus
// Occupied, so beds under maintenance count as available.
type Occupancy struct {
	TotalBeds     int64 `json:"totalBeds"`
	OccupiedBeds  int64 `json:"occupiedBeds"`
	AvailableBeds int64 `json:"availableBeds"`
	OccupancyRate int   `json:"occupancyRate"`
}

// HostelOccupancy is the roll-up for one hostel.
type HostelOccupancy struct {
	HostelID       int64  `json:"hostelId"`
	HostelName     string `json:"hostelName"`
	HostelLocation string `json:"hostelLocation"`
	HostelType     string `json:"hostelType"`
	Occupancy
}

// FloorOccupancy is the roll-up for one floor.
type FloorOccupancy struct {
	FloorID     int64  `json:"floorId"`
	FloorNumber string `json:"floorNumber"`
	Occupancy
}

// DashboardStats are global inventory totals.
type DashboardStats struct {
	TotalHostels  int64 `json:"totalHostels"`
	TotalRooms    int64 `json:"totalRooms"`
	TotalBeds     int64 `json:"totalBeds"`
	OccupiedBeds  int64 `json:"occupiedBeds"`
	AvailableBeds int64 `json:"availableBeds"`
}

// DuePayment is a row of the collections call-list.
type DuePayment struct {
	PaymentID     int64           `json:"paymentId"`
	StudentID     int64           `json:"studentId"`
	StudentName   string          `json:"studentName"`
	StudentMobile string          `json:"studentMobile"`
	HostelName    *string         `json:"hostelName"`
	FloorNumber   *string         `json:"floorNumber"`
	RoomNumber    *string         `json:"roomNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	DueDate       *model.Date     `json:"dueDate"`
}

// TodaysPayment is a payment collected today.
type TodaysPayment struct {
	PaymentID     int64           `json:"paymentId"`
	StudentID     int64           `json:"studentId"`
	StudentName   string          `json:"studentName"`
	StudentMobile string          `json:"studentMobile"`
	HostelName    *string         `json:"hostelName"`
	FloorNumber   *string         `json:"floorNumber"`
	RoomNumber    *string         `json:"roomNumber"`
	BedNumber     *string         `json:"bedNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Date          *model.Date     `json:"date"`
}

// TariffFilter narrows ListTariffs. Nil fields are ignored.
type TariffFilter struct {
	OrganizationID *int64
	HostelID       *int64
}
