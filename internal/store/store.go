package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/rbac"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB
	Ping(ctx context.Context) error
	// Today is the current UTC calendar day on the store's clock.
	Today() model.Date

	// Organizations, students and users.
	ListOrganizations(ctx context.Context) ([]model.Organization, error)
	CreateOrganization(ctx context.Context, org *model.Organization) error
	ListStudents(ctx context.Context) ([]model.Student, error)
	CreateStudent(ctx context.Context, student *model.Student) error
	UpdateStudentPhoto(ctx context.Context, studentID int64, photoURL string) (*model.Student, error)
	SetStudentStatus(ctx context.Context, studentID int64, status string) (*model.Student, error)
	CreateUser(ctx context.Context, user *model.User) error
	AssignUserRole(ctx context.Context, userID int64, role rbac.Role) (*model.User, error)

	// Inventory hierarchy.
	ListHostels(ctx context.Context, organizationID *int64) ([]model.Hostel, error)
	GetHostel(ctx context.Context, hostelID int64) (*HostelDetails, error)
	CreateHostel(ctx context.Context, hostel *model.Hostel) error
	ListFloors(ctx context.Context, hostelID int64) ([]model.Floor, error)
	CreateFloor(ctx context.Context, floor *model.Floor) error
	ListRooms(ctx context.Context, floorID int64) ([]model.Room, error)
	CreateRoom(ctx context.Context, room *model.Room) error
	ListBeds(ctx context.Context, roomID int64) ([]model.Bed, error)
	CreateBed(ctx context.Context, bed *model.Bed) error
	BulkCreateBeds(ctx context.Context, roomID int64, count int, prefix string) ([]model.Bed, error)
	SetBedStatus(ctx context.Context, bedID int64, status string) (*model.Bed, error)

	// Allocation ledger.
	CreateAllocation(ctx context.Context, in AllocationInput) (*AllocationCreated, error)
	VacateAllocation(ctx context.Context, allocationID int64, endDate *model.Date) (*AllocationView, error)
	ListAllocations(ctx context.Context) ([]AllocationView, error)
	ListStudentAllocations(ctx context.Context, studentID int64) ([]StudentAllocationView, error)
	ListAvailableBeds(ctx context.Context) ([]AvailableBed, error)

	// Occupancy aggregation.
	HostelOccupancy(ctx context.Context, organizationID *int64) ([]HostelOccupancy, error)
	FloorOccupancy(ctx context.Context, hostelID int64) ([]FloorOccupancy, error)
	DashboardStats(ctx context.Context, organizationID *int64) (*DashboardStats, error)

	// Payments.
	ListPayments(ctx context.Context) ([]model.Payment, error)
	CreatePayment(ctx context.Context, payment *model.Payment) error
	DuePayments(ctx context.Context) ([]DuePayment, error)
	TodaysPayments(ctx context.Context) ([]TodaysPayment, error)
	MarkPaymentPaid(ctx context.Context, paymentID int64) (*model.Payment, error)
	MarkOverduePayments(ctx context.Context) (int64, error)

	// Tariffs.
	ListTariffs(ctx context.Context, filter TariffFilter) ([]model.Tariff, error)
	CreateTariff(ctx context.Context, tariff *model.Tariff) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures a gormStore.
type Option func(*gormStore)

// WithClock overrides the clock used to decide "today".
func WithClock(now func() time.Time) Option {
	return func(s *gormStore) { s.now = now }
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB, opts ...Option) Store {
	s := &gormStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *gormStore) Today() model.Date {
	return s.today()
}

func (s *gormStore) today() model.Date {
	return model.NewDate(s.now())
}
