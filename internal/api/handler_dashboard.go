package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardStats handles GET /api/dashboard/stats[?organizationId=].
func (h *Handler) DashboardStats(c *gin.Context) {
	orgID, ok := optionalIDQuery(c, "organizationId")
	if !ok {
		return
	}
	stats, err := h.store.DashboardStats(c.Request.Context(), orgID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HostelOccupancy handles GET /api/dashboard/hostel-occupancy[?organizationId=].
func (h *Handler) HostelOccupancy(c *gin.Context) {
	orgID, ok := optionalIDQuery(c, "organizationId")
	if !ok {
		return
	}
	rows, err := h.store.HostelOccupancy(c.Request.Context(), orgID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// FloorOccupancy handles GET /api/dashboard/floor-occupancy/:hostelId.
func (h *Handler) FloorOccupancy(c *gin.Context) {
	id, ok := idParam(c, "hostelId")
	if !ok {
		return
	}
	rows, err := h.store.FloorOccupancy(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DuePayments handles GET /api/dashboard/due-payments.
func (h *Handler) DuePayments(c *gin.Context) {
	rows, err := h.store.DuePayments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TodaysPayments handles GET /api/dashboard/todays-payments.
func (h *Handler) TodaysPayments(c *gin.Context) {
	rows, err := h.store.TodaysPayments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
