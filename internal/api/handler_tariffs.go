package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/store"
)

type createTariffRequest struct {
	OrganizationID int64            `json:"organizationId" binding:"required"`
	HostelID       *int64           `json:"hostelId"`
	RoomType       string           `json:"roomType" binding:"required"`
	TariffType     string           `json:"tariffType" binding:"required"`
	SharingType    *int             `json:"sharingType"`
	Amount         *money           `json:"amount" binding:"required"`
	EffectiveDate  string           `json:"effectiveDate" binding:"required"`
	Status         string           `json:"status"`
}

// ListTariffs handles GET /api/tariffs[?organizationId=&hostelId=].
func (h *Handler) ListTariffs(c *gin.Context) {
	orgID, ok := optionalIDQuery(c, "organizationId")
	if !ok {
		return
	}
	hostelID, ok := optionalIDQuery(c, "hostelId")
	if !ok {
		return
	}

	tariffs, err := h.store.ListTariffs(c.Request.Context(), store.TariffFilter{
		OrganizationID: orgID,
		HostelID:       hostelID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tariffs)
}

// CreateTariff handles POST /api/tariffs.
func (h *Handler) CreateTariff(c *gin.Context) {
	var req createTariffRequest
	if !bind(c, &req) {
		return
	}
	effective, ok := dateField(c, "effectiveDate", req.EffectiveDate)
	if !ok {
		return
	}

	tariff := model.Tariff{
		OrganizationID: req.OrganizationID,
		HostelID:       req.HostelID,
		RoomType:       req.RoomType,
		TariffType:     req.TariffType,
		SharingType:    req.SharingType,
		Amount:         req.Amount.Decimal,
		EffectiveDate:  effective,
		Status:         req.Status,
	}
	if err := h.store.CreateTariff(c.Request.Context(), &tariff); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tariff)
}
