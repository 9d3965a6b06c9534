package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/parse"
	"hostel-management-backend/internal/store"
)

type createAllocationRequest struct {
	StudentID int64   `json:"studentId" binding:"required"`
	BedID     int64   `json:"bedId" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   *string `json:"endDate"`
}

type vacateAllocationRequest struct {
	EndDate *string `json:"endDate"`
}

func dateField(c *gin.Context, field, raw string) (model.Date, bool) {
	d, err := parse.Date(raw)
	if err != nil {
		badRequest(c, field, err.Error())
		return model.Date{}, false
	}
	return d, true
}

func optionalDateField(c *gin.Context, field string, raw *string) (*model.Date, bool) {
	d, err := parse.OptionalDate(raw)
	if err != nil {
		badRequest(c, field, err.Error())
		return nil, false
	}
	return d, true
}

// ListAllocations handles GET /api/allocations.
func (h *Handler) ListAllocations(c *gin.Context) {
	views, err := h.store.ListAllocations(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateAllocation handles POST /api/allocations.
func (h *Handler) CreateAllocation(c *gin.Context) {
	var req createAllocationRequest
	if !bind(c, &req) {
		return
	}
	start, ok := dateField(c, "startDate", req.StartDate)
	if !ok {
		return
	}
	end, ok := optionalDateField(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	created, err := h.store.CreateAllocation(c.Request.Context(), store.AllocationInput{
		StudentID: req.StudentID,
		BedID:     req.BedID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// VacateAllocation handles PATCH /api/allocations/:allocationId/vacate.
// An empty body vacates as of today.
func (h *Handler) VacateAllocation(c *gin.Context) {
	id, ok := idParam(c, "allocationId")
	if !ok {
		return
	}
	var req vacateAllocationRequest
	if !bindOptional(c, &req) {
		return
	}
	end, ok := optionalDateField(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	view, err := h.store.VacateAllocation(c.Request.Context(), id, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListStudentAllocations handles GET /api/students/:studentId/allocations.
func (h *Handler) ListStudentAllocations(c *gin.Context) {
	id, ok := idParam(c, "studentId")
	if !ok {
		return
	}
	views, err := h.store.ListStudentAllocations(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
