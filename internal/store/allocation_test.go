package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-management-backend/internal/model"
)

func bedStatus(t *testing.T, s Store, bedID int64) string {
	t.Helper()
	var bed model.Bed
	require.NoError(t, s.DB().First(&bed, bedID).Error)
	return bed.Status
}

func TestCreateAllocation_OccupiesBed(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	created, err := s.CreateAllocation(ctx, AllocationInput{
		StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", created.StudentName)
	assert.Equal(t, "A", created.BedNumber)
	assert.Equal(t, "Sunrise", created.HostelName)
	assert.Equal(t, "101", created.RoomNumber)
	assert.Equal(t, "2024-01-01", created.StartDate.String())

	assert.Equal(t, model.BedOccupied, bedStatus(t, s, f.bedA.ID))

	available, err := s.ListAvailableBeds(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, f.bedB.ID, available[0].BedID)
	assert.Equal(t, "Sunrise", available[0].HostelName)
	assert.Equal(t, "5000", available[0].RentAmount.String())
}

func TestCreateAllocation_SecondActiveConflicts(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	first, err := s.CreateAllocation(ctx, AllocationInput{StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01")})
	require.NoError(t, err)

	ravi := newStudent(t, s, "Ravi")
	_, err = s.CreateAllocation(ctx, AllocationInput{StudentID: ravi.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-02-01")})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "bedId", fieldOf(t, err))

	views, err := s.ListAllocations(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, first.AllocationID, views[0].AllocationID)
	assert.Equal(t, model.AllocationActive, views[0].Status)
	assert.Equal(t, model.BedOccupied, bedStatus(t, s, f.bedA.ID))
}

func TestCreateAllocation_Rejections(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	_, err := s.SetBedStatus(ctx, f.bedB.ID, model.BedMaintenance)
	require.NoError(t, err)
	gone := newStudent(t, s, "Gone")
	_, err = s.SetStudentStatus(ctx, gone.ID, model.StudentVacated)
	require.NoError(t, err)
	end := day(t, "2023-12-31")

	tests := []struct {
		name  string
		in    AllocationInput
		kind  error
		field string
	}{
		{"unknown student", AllocationInput{StudentID: 999, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01")}, ErrNotFound, ""},
		{"inactive student", AllocationInput{StudentID: gone.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01")}, ErrValidation, "studentId"},
		{"unknown bed", AllocationInput{StudentID: f.asha.ID, BedID: 999, StartDate: day(t, "2024-01-01")}, ErrNotFound, ""},
		{"maintenance bed", AllocationInput{StudentID: f.asha.ID, BedID: f.bedB.ID, StartDate: day(t, "2024-01-01")}, ErrConflict, "bedId"},
		{"end before start", AllocationInput{StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01"), EndDate: &end}, ErrValidation, "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateAllocation(ctx, tt.in)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}

	views, err := s.ListAllocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Equal(t, model.BedAvailable, bedStatus(t, s, f.bedA.ID))
}

func TestVacateAllocation(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	created, err := s.CreateAllocation(ctx, AllocationInput{StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01")})
	require.NoError(t, err)

	early := day(t, "2023-06-01")
	_, err = s.VacateAllocation(ctx, created.AllocationID, &early)
	assert.ErrorIs(t, err, ErrValidation)

	view, err := s.VacateAllocation(ctx, created.AllocationID, nil)
	require.NoError(t, err)
	assert.Equal(t, model.AllocationVacated, view.Status)
	require.NotNil(t, view.EndDate)
	assert.Equal(t, "2024-03-15", view.EndDate.String())
	assert.Equal(t, model.BedAvailable, bedStatus(t, s, f.bedA.ID))

	_, err = s.VacateAllocation(ctx, created.AllocationID, nil)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = s.VacateAllocation(ctx, 999, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// The bed can be allocated again once vacated.
	_, err = s.CreateAllocation(ctx, AllocationInput{StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-03-16")})
	require.NoError(t, err)

	history, err := s.ListStudentAllocations(ctx, f.asha.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-03-16", history[0].StartDate.String())
	assert.Equal(t, model.AllocationActive, history[0].Status)
	assert.Equal(t, model.AllocationVacated, history[1].Status)
}

func TestListStudentAllocations_UnknownStudent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ListStudentAllocations(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAllocation_UniqueIndexRace(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE "students"."id" = \$1 ORDER BY "students"."id" LIMIT \$2`).
		WithArgs(int64(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mobile", "status"}).AddRow(1, "Asha", "9111111111", model.StudentActive))
	mock.ExpectQuery(`SELECT \* FROM "beds" WHERE "beds"."id" = \$1 ORDER BY "beds"."id" LIMIT \$2 FOR UPDATE`).
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "bed_number", "status"}).AddRow(7, 3, "B1", model.BedAvailable))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "allocations" WHERE bed_id = \$1 AND status = \$2`).
		WithArgs(int64(7), model.AllocationActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// Another transaction committed an active allocation for bed 7 after the count.
	mock.ExpectQuery(`INSERT INTO "allocations"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_allocations_active_bed"})
	mock.ExpectRollback()

	_, err := s.CreateAllocation(context.Background(), AllocationInput{StudentID: 1, BedID: 7, StartDate: day(t, "2024-03-15")})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "bedId", fieldOf(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
