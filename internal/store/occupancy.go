package store

import (
	"context"
	"math"

	"gorm.io/gorm"

	"hostel-management-backend/internal/model"
)

// bedTally is one grouped count row of the bed roll-up.
type bedTally struct {
	GroupID  int64
	Total    int64
	Occupied int64
}

func newOccupancy(total, occupied int64) Occupancy {
	o := Occupancy{TotalBeds: total, OccupiedBeds: occupied, AvailableBeds: total - occupied}
	if total > 0 {
		o.OccupancyRate = int(math.Round(float64(occupied) / float64(total) * 100))
	}
	return o
}

// tallyBeds counts beds per groupCol ("h.id" or "f.id"), joining up the
// hierarchy from bed to hostel.
func tallyBeds(tx *gorm.DB, groupCol string, scope func(*gorm.DB) *gorm.DB) (map[int64]bedTally, error) {
	q := tx.Table("beds AS b").
		Select(groupCol+" AS group_id, COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN b.status = ? THEN 1 ELSE 0 END), 0) AS occupied", model.BedOccupied).
		Joins("JOIN rooms r ON r.id = b.room_id").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Joins("JOIN hostels h ON h.id = f.hostel_id").
		Group(groupCol)
	if scope != nil {
		q = scope(q)
	}

	var rows []bedTally
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	tallies := make(map[int64]bedTally, len(rows))
	for _, r := range rows {
		tallies[r.GroupID] = r
	}
	return tallies, nil
}

// HostelOccupancy rolls beds up per hostel. Hostels without beds report zeros.
func (s *gormStore) HostelOccupancy(ctx context.Context, organizationID *int64) ([]HostelOccupancy, error) {
	db := s.db.WithContext(ctx)

	// 1) all hostels in scope
	hostels, err := s.ListHostels(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	// 2) one grouped count over beds
	tallies, err := tallyBeds(db, "h.id", func(q *gorm.DB) *gorm.DB {
		if organizationID != nil {
			return q.Where("h.organization_id = ?", *organizationID)
		}
		return q
	})
	if err != nil {
		return nil, err
	}

	// 3) merge
	out := make([]HostelOccupancy, 0, len(hostels))
	for _, h := range hostels {
		t := tallies[h.ID]
		out = append(out, HostelOccupancy{
			HostelID:       h.ID,
			HostelName:     h.Name,
			HostelLocation: h.Location,
			HostelType:     h.Type,
			Occupancy:      newOccupancy(t.Total, t.Occupied),
		})
	}
	return out, nil
}

// FloorOccupancy rolls beds up per floor of one hostel.
func (s *gormStore) FloorOccupancy(ctx context.Context, hostelID int64) ([]FloorOccupancy, error) {
	db := s.db.WithContext(ctx)

	floors, err := s.ListFloors(ctx, hostelID)
	if err != nil {
		return nil, err
	}

	tallies, err := tallyBeds(db, "f.id", func(q *gorm.DB) *gorm.DB {
		return q.Where("f.hostel_id = ?", hostelID)
	})
	if err != nil {
		return nil, err
	}

	out := make([]FloorOccupancy, 0, len(floors))
	for _, f := range floors {
		t := tallies[f.ID]
		out = append(out, FloorOccupancy{
			FloorID:     f.ID,
			FloorNumber: f.FloorNumber,
			Occupancy:   newOccupancy(t.Total, t.Occupied),
		})
	}
	return out, nil
}

// DashboardStats returns inventory totals, optionally for one organization.
func (s *gormStore) DashboardStats(ctx context.Context, organizationID *int64) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	var stats DashboardStats

	hostels := db.Model(&model.Hostel{})
	rooms := db.Table("rooms AS r").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Joins("JOIN hostels h ON h.id = f.hostel_id")
	if organizationID != nil {
		hostels = hostels.Where("organization_id = ?", *organizationID)
		rooms = rooms.Where("h.organization_id = ?", *organizationID)
	}
	if err := hostels.Count(&stats.TotalHostels).Error; err != nil {
		return nil, err
	}
	if err := rooms.Count(&stats.TotalRooms).Error; err != nil {
		return nil, err
	}

	var totals struct {
		Total    int64
		Occupied int64
	}
	q := db.Table("beds AS b").
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN b.status = ? THEN 1 ELSE 0 END), 0) AS occupied", model.BedOccupied).
		Joins("JOIN rooms r ON r.id = b.room_id").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Joins("JOIN hostels h ON h.id = f.hostel_id")
	if organizationID != nil {
		q = q.Where("h.organization_id = ?", *organizationID)
	}
	if err := q.Scan(&totals).Error; err != nil {
		return nil, err
	}

	stats.TotalBeds = totals.Total
	stats.OccupiedBeds = totals.Occupied
	stats.AvailableBeds = totals.Total - totals.Occupied
	return &stats, nil
}
