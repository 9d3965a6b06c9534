package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hostel-management-backend/internal/model"
)

// ListTariffs returns tariffs, latest effective date first.
func (s *gormStore) ListTariffs(ctx context.Context, filter TariffFilter) ([]model.Tariff, error) {
	q := s.db.WithContext(ctx).Order("effective_date DESC, id DESC")
	if filter.OrganizationID != nil {
		q = q.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.HostelID != nil {
		q = q.Where("hostel_id = ?", *filter.HostelID)
	}
	tariffs := []model.Tariff{}
	if err := q.Find(&tariffs).Error; err != nil {
		return nil, err
	}
	return tariffs, nil
}

// CreateTariff stores a pricing rule. Share-wise rules carry a positive
// sharing type; room-wise rules never do. A hostel-specific rule must name a
// hostel of the same organization.
func (s *gormStore) CreateTariff(ctx context.Context, tariff *model.Tariff) error {
	tariff.RoomType = strings.TrimSpace(tariff.RoomType)
	if tariff.RoomType == "" {
		return validationError("roomType", "roomType is required")
	}
	switch tariff.TariffType {
	case model.TariffRoomWise:
		tariff.SharingType = nil
	case model.TariffShareWise:
		if tariff.SharingType == nil || *tariff.SharingType < 1 {
			return validationError("sharingType", "sharingType must be at least 1 for share_wise tariffs")
		}
	default:
		return validationError("tariffType", "tariffType must be room_wise or share_wise")
	}
	if !tariff.Amount.IsPositive() {
		return validationError("amount", "amount must be greater than zero")
	}
	if tariff.EffectiveDate.Time().IsZero() {
		return validationError("effectiveDate", "effectiveDate is required")
	}
	if tariff.Status == "" {
		tariff.Status = model.StatusActive
	}
	if tariff.Status != model.StatusActive && tariff.Status != model.StatusInactive {
		return validationError("status", "status must be active or inactive")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Organization{}, tariff.OrganizationID, "organization"); err != nil {
			return err
		}
		if tariff.HostelID != nil {
			var hostel model.Hostel
			if err := tx.First(&hostel, *tariff.HostelID).Error; err != nil {
				return notFoundOr(err, "hostel", *tariff.HostelID)
			}
			if hostel.OrganizationID != tariff.OrganizationID {
				return validationError("hostelId", "hostel %d does not belong to organization %d", hostel.ID, tariff.OrganizationID)
			}
		}
		return tx.Create(tariff).Error
	})
}
