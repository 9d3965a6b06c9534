package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-management-backend/internal/model"
)

func TestNewOccupancy(t *testing.T) {
	tests := []struct {
		total, occupied int64
		available       int64
		rate            int
	}{
		{0, 0, 0, 0},
		{2, 1, 1, 50},
		{3, 1, 2, 33},
		{3, 2, 1, 67},
		{8, 8, 0, 100},
	}
	for _, tt := range tests {
		o := newOccupancy(tt.total, tt.occupied)
		assert.Equal(t, tt.available, o.AvailableBeds)
		assert.Equal(t, tt.rate, o.OccupancyRate, "total=%d occupied=%d", tt.total, tt.occupied)
		assert.Equal(t, o.TotalBeds, o.OccupiedBeds+o.AvailableBeds)
	}
}

func TestHostelOccupancy_SunriseScenario(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	_, err := s.CreateAllocation(ctx, AllocationInput{StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01")})
	require.NoError(t, err)

	empty := model.Hostel{OrganizationID: f.org.ID, Name: "Empty", Location: "Nashik", Type: model.HostelBoys}
	require.NoError(t, s.CreateHostel(ctx, &empty))

	rows, err := s.HostelOccupancy(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Sunrise", rows[0].HostelName)
	assert.Equal(t, Occupancy{TotalBeds: 2, OccupiedBeds: 1, AvailableBeds: 1, OccupancyRate: 50}, rows[0].Occupancy)
	assert.Equal(t, "Empty", rows[1].HostelName)
	assert.Equal(t, Occupancy{}, rows[1].Occupancy)

	again, err := s.HostelOccupancy(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestHostelOccupancy_ScopedToOrganization(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	other := model.Organization{Name: "O2", OwnerName: "Other", Mobile: "1"}
	require.NoError(t, s.CreateOrganization(ctx, &other))

	rows, err := s.HostelOccupancy(ctx, &other.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = s.HostelOccupancy(ctx, &f.org.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFloorOccupancy(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	_, err := s.CreateAllocation(ctx, AllocationInput{StudentID: f.asha.ID, BedID: f.bedB.ID, StartDate: day(t, "2024-01-01")})
	require.NoError(t, err)

	rows, err := s.FloorOccupancy(ctx, f.hostel.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].FloorNumber)
	assert.Equal(t, Occupancy{TotalBeds: 2, OccupiedBeds: 1, AvailableBeds: 1, OccupancyRate: 50}, rows[0].Occupancy)
	assert.Equal(t, "2", rows[1].FloorNumber)
	assert.Equal(t, Occupancy{}, rows[1].Occupancy)

	_, err = s.FloorOccupancy(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	_, err := s.SetBedStatus(ctx, f.bedB.ID, model.BedMaintenance)
	require.NoError(t, err)
	_, err = s.CreateAllocation(ctx, AllocationInput{StudentID: f.asha.ID, BedID: f.bedA.ID, StartDate: day(t, "2024-01-01")})
	require.NoError(t, err)

	stats, err := s.DashboardStats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalHostels:  1,
		TotalRooms:    1,
		TotalBeds:     2,
		OccupiedBeds:  1,
		AvailableBeds: 1, // maintenance beds are not occupied
	}, stats)

	other := int64(999)
	stats, err = s.DashboardStats(ctx, &other)
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{}, stats)
}
