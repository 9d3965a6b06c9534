// Package seed loads an admin account and a small demo hostel.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"hostel-management-backend/config"
	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/rbac"
	"hostel-management-backend/internal/store"
)

// Run creates the admin user and, when the database holds no organization
// yet, a demo organization with one hostel. Running it twice changes nothing.
func Run(ctx context.Context, s store.Store, cfg config.SeedConfig, logger *log.Logger) error {
	admin := model.User{Email: cfg.AdminEmail, Name: cfg.AdminName, Role: string(rbac.SuperAdmin)}
	switch err := s.CreateUser(ctx, &admin); {
	case err == nil:
		logger.Printf("created admin user %s", admin.Email)
	case errors.Is(err, store.ErrConflict):
		logger.Printf("admin user %s already exists", admin.Email)
	default:
		return fmt.Errorf("create admin user: %w", err)
	}

	orgs, err := s.ListOrganizations(ctx)
	if err != nil {
		return err
	}
	if len(orgs) > 0 {
		logger.Printf("found %d organization(s); skipping demo data", len(orgs))
		return nil
	}
	return demo(ctx, s, logger)
}

func demo(ctx context.Context, s store.Store, logger *log.Logger) error {
	org := model.Organization{Name: "Demo Hostels", OwnerName: "Demo Owner", Mobile: "9000000000"}
	if err := s.CreateOrganization(ctx, &org); err != nil {
		return fmt.Errorf("create organization: %w", err)
	}

	hostel := model.Hostel{OrganizationID: org.ID, Name: "Sunrise", Location: "Pune", Type: model.HostelCoed}
	if err := s.CreateHostel(ctx, &hostel); err != nil {
		return fmt.Errorf("create hostel: %w", err)
	}

	var firstBed int64
	for i, label := range []string{"Ground", "1"} {
		floor := model.Floor{HostelID: hostel.ID, FloorNumber: label}
		if err := s.CreateFloor(ctx, &floor); err != nil {
			return fmt.Errorf("create floor %s: %w", label, err)
		}
		for j, roomType := range []string{model.RoomNonAC, model.RoomAC} {
			room := model.Room{
				FloorID:    floor.ID,
				RoomNumber: fmt.Sprintf("%d%02d", i, j+1),
				Capacity:   2,
				Type:       roomType,
				RentAmount: decimal.NewFromInt(int64(4000 + 1500*j)),
			}
			if err := s.CreateRoom(ctx, &room); err != nil {
				return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
			}
			beds, err := s.BulkCreateBeds(ctx, room.ID, room.Capacity, "B")
			if err != nil {
				return fmt.Errorf("create beds in room %s: %w", room.RoomNumber, err)
			}
			if firstBed == 0 {
				firstBed = beds[0].ID
			}
		}
	}

	student := model.Student{Name: "Asha", Mobile: "9111111111"}
	if err := s.CreateStudent(ctx, &student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	start := s.Today()
	alloc, err := s.CreateAllocation(ctx, store.AllocationInput{StudentID: student.ID, BedID: firstBed, StartDate: start})
	if err != nil {
		return fmt.Errorf("allocate demo bed: %w", err)
	}

	due := model.NewDate(start.Time().AddDate(0, 0, 7))
	rent := model.Payment{
		StudentID:    student.ID,
		AllocationID: &alloc.AllocationID,
		Amount:       decimal.NewFromInt(4000),
		Type:         model.PaymentRent,
		DueDate:      &due,
	}
	if err := s.CreatePayment(ctx, &rent); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	sharing := 2
	tariff := model.Tariff{
		OrganizationID: org.ID,
		HostelID:       &hostel.ID,
		RoomType:       "Double",
		TariffType:     model.TariffShareWise,
		SharingType:    &sharing,
		Amount:         decimal.NewFromInt(4000),
		EffectiveDate:  start,
	}
	if err := s.CreateTariff(ctx, &tariff); err != nil {
		return fmt.Errorf("create tariff: %w", err)
	}

	logger.Printf("seeded demo organization %q with hostel %q", org.Name, hostel.Name)
	return nil
}
