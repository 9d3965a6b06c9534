package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/parse"
)

var hostelTypes = map[string]bool{model.HostelBoys: true, model.HostelGirls: true, model.HostelCoed: true}

var roomTypes = map[string]bool{model.RoomAC: true, model.RoomNonAC: true}

// ListHostels returns hostels in insertion order, optionally for one organization.
func (s *gormStore) ListHostels(ctx context.Context, organizationID *int64) ([]model.Hostel, error) {
	q := s.db.WithContext(ctx).Order("id")
	if organizationID != nil {
		q = q.Where("organization_id = ?", *organizationID)
	}
	hostels := []model.Hostel{}
	if err := q.Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

// GetHostel returns a hostel with its floor, room and bed counts.
func (s *gormStore) GetHostel(ctx context.Context, hostelID int64) (*HostelDetails, error) {
	db := s.db.WithContext(ctx)

	var details HostelDetails
	if err := db.First(&details.Hostel, hostelID).Error; err != nil {
		return nil, notFoundOr(err, "hostel", hostelID)
	}

	if err := db.Model(&model.Floor{}).Where("hostel_id = ?", hostelID).Count(&details.FloorCount).Error; err != nil {
		return nil, err
	}
	if err := db.Table("rooms AS r").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Where("f.hostel_id = ?", hostelID).
		Count(&details.RoomCount).Error; err != nil {
		return nil, err
	}
	if err := db.Table("beds AS b").
		Joins("JOIN rooms r ON r.id = b.room_id").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Where("f.hostel_id = ?", hostelID).
		Count(&details.BedCount).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

// CreateHostel inserts a hostel under an existing organization.
func (s *gormStore) CreateHostel(ctx context.Context, hostel *model.Hostel) error {
	hostel.Name = strings.TrimSpace(hostel.Name)
	hostel.Location = strings.TrimSpace(hostel.Location)
	if hostel.Name == "" {
		return validationError("name", "name is required")
	}
	if hostel.Location == "" {
		return validationError("location", "location is required")
	}
	if !hostelTypes[hostel.Type] {
		return validationError("type", "type must be one of Boys, Girls, Co-ed")
	}
	if hostel.Status == "" {
		hostel.Status = model.StatusActive
	}
	if hostel.Status != model.StatusActive && hostel.Status != model.StatusInactive {
		return validationError("status", "status must be active or inactive")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org model.Organization
		if err := tx.Select("id").First(&org, hostel.OrganizationID).Error; err != nil {
			return notFoundOr(err, "organization", hostel.OrganizationID)
		}
		return tx.Create(hostel).Error
	})
}

// ListFloors returns the floors of a hostel in insertion order.
func (s *gormStore) ListFloors(ctx context.Context, hostelID int64) ([]model.Floor, error) {
	db := s.db.WithContext(ctx)
	if err := requireRow(db, &model.Hostel{}, hostelID, "hostel"); err != nil {
		return nil, err
	}
	floors := []model.Floor{}
	if err := db.Where("hostel_id = ?", hostelID).Order("id").Find(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

// CreateFloor inserts a floor whose label is unique within its hostel.
func (s *gormStore) CreateFloor(ctx context.Context, floor *model.Floor) error {
	floor.FloorNumber = parse.Label(floor.FloorNumber)
	if floor.FloorNumber == "" {
		return validationError("floorNumber", "floorNumber is required")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Hostel{}, floor.HostelID, "hostel"); err != nil {
			return err
		}
		taken, err := labelTaken(tx, &model.Floor{}, "hostel_id", floor.HostelID, "floor_number", floor.FloorNumber)
		if err != nil {
			return err
		}
		if taken {
			return conflictError("floorNumber", "floor %q already exists in hostel %d", floor.FloorNumber, floor.HostelID)
		}
		return duplicateAsConflict(tx.Create(floor).Error, "floorNumber", "floor %q already exists in hostel %d", floor.FloorNumber, floor.HostelID)
	})
}

// ListRooms returns the rooms of a floor in insertion order.
func (s *gormStore) ListRooms(ctx context.Context, floorID int64) ([]model.Room, error) {
	db := s.db.WithContext(ctx)
	if err := requireRow(db, &model.Floor{}, floorID, "floor"); err != nil {
		return nil, err
	}
	rooms := []model.Room{}
	if err := db.Where("floor_id = ?", floorID).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom inserts a room whose number is unique within its floor.
func (s *gormStore) CreateRoom(ctx context.Context, room *model.Room) error {
	room.RoomNumber = parse.Label(room.RoomNumber)
	if room.RoomNumber == "" {
		return validationError("roomNumber", "roomNumber is required")
	}
	if room.Capacity < 1 {
		return validationError("capacity", "capacity must be at least 1")
	}
	if room.Type == "" {
		room.Type = model.RoomNonAC
	}
	if !roomTypes[room.Type] {
		return validationError("type", "type must be AC or Non-AC")
	}
	if room.RentAmount.IsNegative() {
		return validationError("rentAmount", "rentAmount must not be negative")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Floor{}, room.FloorID, "floor"); err != nil {
			return err
		}
		taken, err := labelTaken(tx, &model.Room{}, "floor_id", room.FloorID, "room_number", room.RoomNumber)
		if err != nil {
			return err
		}
		if taken {
			return conflictError("roomNumber", "room %q already exists on floor %d", room.RoomNumber, room.FloorID)
		}
		return duplicateAsConflict(tx.Create(room).Error, "roomNumber", "room %q already exists on floor %d", room.RoomNumber, room.FloorID)
	})
}

// ListBeds returns the beds of a room in insertion order.
func (s *gormStore) ListBeds(ctx context.Context, roomID int64) ([]model.Bed, error) {
	db := s.db.WithContext(ctx)
	if err := requireRow(db, &model.Room{}, roomID, "room"); err != nil {
		return nil, err
	}
	beds := []model.Bed{}
	if err := db.Where("room_id = ?", roomID).Order("id").Find(&beds).Error; err != nil {
		return nil, err
	}
	return beds, nil
}

// CreateBed inserts a bed whose label is unique within its room. New beds
// are available or under maintenance; occupied is only reached through an
// allocation.
func (s *gormStore) CreateBed(ctx context.Context, bed *model.Bed) error {
	bed.BedNumber = parse.Label(bed.BedNumber)
	if bed.BedNumber == "" {
		return validationError("bedNumber", "bedNumber is required")
	}
	if bed.Status == "" {
		bed.Status = model.BedAvailable
	}
	if err := checkManualBedStatus(bed.Status); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Room{}, bed.RoomID, "room"); err != nil {
			return err
		}
		taken, err := labelTaken(tx, &model.Bed{}, "room_id", bed.RoomID, "bed_number", bed.BedNumber)
		if err != nil {
			return err
		}
		if taken {
			return conflictError("bedNumber", "bed %q already exists in room %d", bed.BedNumber, bed.RoomID)
		}
		return duplicateAsConflict(tx.Create(bed).Error, "bedNumber", "bed %q already exists in room %d", bed.BedNumber, bed.RoomID)
	})
}

// BulkCreateBeds adds count beds labelled prefix1..prefixN to a room. If any
// label is already used in the room nothing is created.
func (s *gormStore) BulkCreateBeds(ctx context.Context, roomID int64, count int, prefix string) ([]model.Bed, error) {
	labels, err := parse.BedLabels(prefix, count)
	if err != nil {
		return nil, validationError("count", "%s", err.Error())
	}

	beds := make([]model.Bed, 0, len(labels))
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Room{}, roomID, "room"); err != nil {
			return err
		}

		var existing []string
		if err := tx.Model(&model.Bed{}).
			Where("room_id = ? AND bed_number IN ?", roomID, labels).
			Order("bed_number").
			Pluck("bed_number", &existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			return conflictError("prefix", "bed %q already exists in room %d", existing[0], roomID)
		}

		for _, label := range labels {
			beds = append(beds, model.Bed{RoomID: roomID, BedNumber: label, Status: model.BedAvailable})
		}
		return duplicateAsConflict(tx.Create(&beds).Error, "prefix", "bed labels collide in room %d", roomID)
	})
	if err != nil {
		return nil, err
	}
	return beds, nil
}

// SetBedStatus moves a bed between available and maintenance. A bed that
// holds an active allocation cannot be moved.
func (s *gormStore) SetBedStatus(ctx context.Context, bedID int64, status string) (*model.Bed, error) {
	if err := checkManualBedStatus(status); err != nil {
		return nil, err
	}

	var bed model.Bed
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bed, bedID).Error; err != nil {
			return notFoundOr(err, "bed", bedID)
		}
		active, err := activeAllocationCount(tx, bed.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return conflictError("status", "bed %d has an active allocation", bed.ID)
		}
		if bed.Status == status {
			return nil
		}
		if err := tx.Model(&bed).Update("status", status).Error; err != nil {
			return err
		}
		bed.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bed, nil
}

func checkManualBedStatus(status string) error {
	switch status {
	case model.BedAvailable, model.BedMaintenance:
		return nil
	case model.BedOccupied:
		return validationError("status", "occupied is set by allocating the bed")
	default:
		return validationError("status", "status must be available or maintenance")
	}
}

// requireRow fails with ErrNotFound when no row of m's table has id.
func requireRow(tx *gorm.DB, m any, id int64, what string) error {
	var n int64
	if err := tx.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return notFoundError("%s %d not found", what, id)
	}
	return nil
}

// labelTaken reports whether a sibling under the same parent already uses label.
func labelTaken(tx *gorm.DB, m any, parentCol string, parentID int64, labelCol, label string) (bool, error) {
	var n int64
	err := tx.Model(m).
		Where(parentCol+" = ? AND "+labelCol+" = ?", parentID, label).
		Count(&n).Error
	return n > 0, err
}

// duplicateAsConflict maps a unique-index violation that slipped past the
// pre-check (a concurrent insert) to ErrConflict.
func duplicateAsConflict(err error, field, format string, args ...any) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflictError(field, format, args...)
	}
	return err
}
