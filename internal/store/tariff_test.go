package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-management-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestCreateTariff(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	roomWise := model.Tariff{
		OrganizationID: f.org.ID, RoomType: "Double", TariffType: model.TariffRoomWise,
		SharingType: intPtr(2), Amount: decimal.NewFromInt(9000), EffectiveDate: day(t, "2024-01-01"),
	}
	require.NoError(t, s.CreateTariff(ctx, &roomWise))
	assert.Nil(t, roomWise.SharingType)
	assert.Equal(t, model.StatusActive, roomWise.Status)

	shareWise := model.Tariff{
		OrganizationID: f.org.ID, HostelID: &f.hostel.ID, RoomType: "Triple", TariffType: model.TariffShareWise,
		SharingType: intPtr(3), Amount: decimal.NewFromInt(4000), EffectiveDate: day(t, "2024-02-01"),
	}
	require.NoError(t, s.CreateTariff(ctx, &shareWise))

	all, err := s.ListTariffs(ctx, TariffFilter{OrganizationID: &f.org.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, shareWise.ID, all[0].ID, "latest effective date first")

	scoped, err := s.ListTariffs(ctx, TariffFilter{HostelID: &f.hostel.ID})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, 3, *scoped[0].SharingType)
}

func TestCreateTariff_Validation(t *testing.T) {
	s := newTestStore(t)
	f := seedSunrise(t, s)
	ctx := context.Background()

	other := model.Organization{Name: "O2", OwnerName: "x", Mobile: "1"}
	require.NoError(t, s.CreateOrganization(ctx, &other))

	base := func() model.Tariff {
		return model.Tariff{
			OrganizationID: f.org.ID, RoomType: "Single", TariffType: model.TariffRoomWise,
			Amount: decimal.NewFromInt(1000), EffectiveDate: day(t, "2024-01-01"),
		}
	}
	tests := []struct {
		name   string
		mutate func(*model.Tariff)
		kind   error
		field  string
	}{
		{"missing room type", func(tr *model.Tariff) { tr.RoomType = " " }, ErrValidation, "roomType"},
		{"bad tariff type", func(tr *model.Tariff) { tr.TariffType = "bed_wise" }, ErrValidation, "tariffType"},
		{"share wise without sharing", func(tr *model.Tariff) { tr.TariffType = model.TariffShareWise }, ErrValidation, "sharingType"},
		{"non positive amount", func(tr *model.Tariff) { tr.Amount = decimal.Zero }, ErrValidation, "amount"},
		{"missing effective date", func(tr *model.Tariff) { tr.EffectiveDate = model.Date{} }, ErrValidation, "effectiveDate"},
		{"unknown organization", func(tr *model.Tariff) { tr.OrganizationID = 999 }, ErrNotFound, ""},
		{"hostel of another organization", func(tr *model.Tariff) { tr.OrganizationID = other.ID; tr.HostelID = &f.hostel.ID }, ErrValidation, "hostelId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := base()
			tt.mutate(&tr)
			err := s.CreateTariff(ctx, &tr)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}
