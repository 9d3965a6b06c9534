package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"hostel-management-backend/config"
	"hostel-management-backend/internal/db"
	"hostel-management-backend/internal/model"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// newTestStore opens a private in-memory sqlite database with the full schema.
func newTestStore(t *testing.T) Store {
	t.Helper()
	gormDB, err := db.Init(&config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})
	return NewGormStore(gormDB, WithClock(func() time.Time { return fixedNow }))
}

func day(t *testing.T, s string) model.Date {
	t.Helper()
	parsed, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return model.NewDate(parsed)
}

// sunrise is organization O1 -> hostel "Sunrise" with floors "1" and "2";
// floor "1" holds room "101" with beds "A" and "B".
type sunrise struct {
	org    model.Organization
	hostel model.Hostel
	floor1 model.Floor
	floor2 model.Floor
	room   model.Room
	bedA   model.Bed
	bedB   model.Bed
	asha   model.Student
}

func seedSunrise(t *testing.T, s Store) *sunrise {
	t.Helper()
	ctx := context.Background()
	f := &sunrise{}

	f.org = model.Organization{Name: "O1", OwnerName: "Owner", Mobile: "9000000000"}
	require.NoError(t, s.CreateOrganization(ctx, &f.org))

	f.hostel = model.Hostel{OrganizationID: f.org.ID, Name: "Sunrise", Location: "Pune", Type: model.HostelCoed}
	require.NoError(t, s.CreateHostel(ctx, &f.hostel))

	f.floor1 = model.Floor{HostelID: f.hostel.ID, FloorNumber: "1"}
	require.NoError(t, s.CreateFloor(ctx, &f.floor1))
	f.floor2 = model.Floor{HostelID: f.hostel.ID, FloorNumber: "2"}
	require.NoError(t, s.CreateFloor(ctx, &f.floor2))

	f.room = model.Room{FloorID: f.floor1.ID, RoomNumber: "101", Capacity: 2, RentAmount: decimal.NewFromInt(5000)}
	require.NoError(t, s.CreateRoom(ctx, &f.room))

	f.bedA = model.Bed{RoomID: f.room.ID, BedNumber: "A"}
	require.NoError(t, s.CreateBed(ctx, &f.bedA))
	f.bedB = model.Bed{RoomID: f.room.ID, BedNumber: "B"}
	require.NoError(t, s.CreateBed(ctx, &f.bedB))

	f.asha = model.Student{Name: "Asha", Mobile: "9111111111"}
	require.NoError(t, s.CreateStudent(ctx, &f.asha))
	return f
}

func newStudent(t *testing.T, s Store, name string) model.Student {
	t.Helper()
	st := model.Student{Name: name, Mobile: "9222222222"}
	require.NoError(t, s.CreateStudent(context.Background(), &st))
	return st
}
