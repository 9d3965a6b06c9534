package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-management-backend/internal/model"
)

const allocationViewColumns = `a.id AS allocation_id, a.student_id, s.name AS student_name, s.mobile AS student_mobile,
	a.bed_id, b.bed_number, r.room_number, f.floor_number, h.name AS hostel_name, h.location AS hostel_location,
	a.start_date, a.end_date, a.status`

func allocationViews(tx *gorm.DB) *gorm.DB {
	return tx.Table("allocations AS a").
		Select(allocationViewColumns).
		Joins("JOIN students s ON s.id = a.student_id").
		Joins("JOIN beds b ON b.id = a.bed_id").
		Joins("JOIN rooms r ON r.id = b.room_id").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Joins("JOIN hostels h ON h.id = f.hostel_id")
}

// CreateAllocation places an active student in a bed that holds no active
// allocation and is not under maintenance. The bed row is locked for the
// duration of the transaction; a racing insert that still gets through is
// rejected by the partial unique index on active allocations.
func (s *gormStore) CreateAllocation(ctx context.Context, in AllocationInput) (*AllocationCreated, error) {
	if in.EndDate != nil && in.EndDate.Time().Before(in.StartDate.Time()) {
		return nil, validationError("endDate", "endDate %s is before startDate %s", in.EndDate, in.StartDate)
	}

	var created AllocationCreated
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student model.Student
		if err := tx.First(&student, in.StudentID).Error; err != nil {
			return notFoundOr(err, "student", in.StudentID)
		}
		if student.Status != model.StudentActive {
			return validationError("studentId", "student %d is %s", student.ID, student.Status)
		}

		var bed model.Bed
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bed, in.BedID).Error; err != nil {
			return notFoundOr(err, "bed", in.BedID)
		}
		if bed.Status == model.BedMaintenance {
			return conflictError("bedId", "bed %d is under maintenance", bed.ID)
		}
		active, err := activeAllocationCount(tx, bed.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return conflictError("bedId", "bed %d is already occupied", bed.ID)
		}

		alloc := model.Allocation{
			StudentID: student.ID,
			BedID:     bed.ID,
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Status:    model.AllocationActive,
		}
		if err := tx.Create(&alloc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictError("bedId", "bed %d is already occupied", bed.ID)
			}
			return err
		}
		if err := syncBedStatus(tx, &bed); err != nil {
			return err
		}

		var view AllocationView
		if err := allocationViews(tx).Where("a.id = ?", alloc.ID).Scan(&view).Error; err != nil {
			return err
		}
		created = AllocationCreated{
			AllocationID: alloc.ID,
			StudentID:    student.ID,
			StudentName:  student.Name,
			BedID:        bed.ID,
			BedNumber:    bed.BedNumber,
			HostelName:   view.HostelName,
			RoomNumber:   view.RoomNumber,
			StartDate:    alloc.StartDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// VacateAllocation ends an active stay and frees its bed. endDate defaults
// to today.
func (s *gormStore) VacateAllocation(ctx context.Context, allocationID int64, endDate *model.Date) (*AllocationView, error) {
	end := s.today()
	if endDate != nil {
		end = *endDate
	}

	var view AllocationView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var alloc model.Allocation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&alloc, allocationID).Error; err != nil {
			return notFoundOr(err, "allocation", allocationID)
		}
		if alloc.Status != model.AllocationActive {
			return conflictError("allocationId", "allocation %d is already %s", alloc.ID, alloc.Status)
		}
		if end.Time().Before(alloc.StartDate.Time()) {
			return validationError("endDate", "endDate %s is before startDate %s", end, alloc.StartDate)
		}

		if err := tx.Model(&alloc).Updates(map[string]any{
			"status":   model.AllocationVacated,
			"end_date": end,
		}).Error; err != nil {
			return err
		}

		var bed model.Bed
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bed, alloc.BedID).Error; err != nil {
			return notFoundOr(err, "bed", alloc.BedID)
		}
		if err := syncBedStatus(tx, &bed); err != nil {
			return err
		}
		return allocationViews(tx).Where("a.id = ?", alloc.ID).Scan(&view).Error
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListAllocations returns every allocation with its student and location,
// newest start date first.
func (s *gormStore) ListAllocations(ctx context.Context) ([]AllocationView, error) {
	views := []AllocationView{}
	err := allocationViews(s.db.WithContext(ctx)).
		Order("a.start_date DESC, a.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListStudentAllocations returns a student's stay history, newest first.
func (s *gormStore) ListStudentAllocations(ctx context.Context, studentID int64) ([]StudentAllocationView, error) {
	db := s.db.WithContext(ctx)
	if err := requireRow(db, &model.Student{}, studentID, "student"); err != nil {
		return nil, err
	}

	views := []StudentAllocationView{}
	err := allocationViews(db).
		Where("a.student_id = ?", studentID).
		Order("a.start_date DESC, a.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListAvailableBeds returns beds that can take a new allocation, grouped by
// hostel, floor and room label.
func (s *gormStore) ListAvailableBeds(ctx context.Context) ([]AvailableBed, error) {
	beds := []AvailableBed{}
	err := s.db.WithContext(ctx).Table("beds AS b").
		Select(`b.id AS bed_id, b.bed_number, r.room_number, f.floor_number,
			h.name AS hostel_name, h.location AS hostel_location, h.type AS hostel_type, r.rent_amount`).
		Joins("JOIN rooms r ON r.id = b.room_id").
		Joins("JOIN floors f ON f.id = r.floor_id").
		Joins("JOIN hostels h ON h.id = f.hostel_id").
		Where("b.status = ?", model.BedAvailable).
		Where("NOT EXISTS (SELECT 1 FROM allocations a WHERE a.bed_id = b.id AND a.status = ?)", model.AllocationActive).
		Order("h.name, f.floor_number, r.room_number, b.bed_number").
		Scan(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

func activeAllocationCount(tx *gorm.DB, bedID int64) (int64, error) {
	var n int64
	err := tx.Model(&model.Allocation{}).
		Where("bed_id = ? AND status = ?", bedID, model.AllocationActive).
		Count(&n).Error
	return n, err
}

// syncBedStatus derives the bed's status from the ledger: occupied while an
// active allocation exists, otherwise available. Maintenance is left alone
// when the bed is free.
func syncBedStatus(tx *gorm.DB, bed *model.Bed) error {
	active, err := activeAllocationCount(tx, bed.ID)
	if err != nil {
		return err
	}

	want := bed.Status
	switch {
	case active > 0:
		want = model.BedOccupied
	case bed.Status == model.BedOccupied:
		want = model.BedAvailable
	}
	if want == bed.Status {
		return nil
	}
	if err := tx.Model(bed).Update("status", want).Error; err != nil {
		return err
	}
	bed.Status = want
	return nil
}
