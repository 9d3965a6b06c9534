package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/model"
)

type createPaymentRequest struct {
	StudentID    int64            `json:"studentId" binding:"required"`
	AllocationID *int64           `json:"allocationId"`
	Amount       *money           `json:"amount" binding:"required"`
	Type         string           `json:"type" binding:"required"`
	Method       *string          `json:"method"`
	Status       string           `json:"status"`
	Date         *string          `json:"date"`
	DueDate      *string          `json:"dueDate"`
	Notes        *string          `json:"notes"`
}

// ListPayments handles GET /api/payments.
func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.store.ListPayments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment handles POST /api/payments.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if !bind(c, &req) {
		return
	}
	date, ok := optionalDateField(c, "date", req.Date)
	if !ok {
		return
	}
	due, ok := optionalDateField(c, "dueDate", req.DueDate)
	if !ok {
		return
	}

	payment := model.Payment{
		StudentID:    req.StudentID,
		AllocationID: req.AllocationID,
		Amount:       req.Amount.Decimal,
		Type:         req.Type,
		Method:       req.Method,
		Status:       req.Status,
		DueDate:      due,
		Notes:        req.Notes,
	}
	if date != nil {
		payment.Date = *date
	}
	if err := h.store.CreatePayment(c.Request.Context(), &payment); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// MarkPaymentPaid handles PATCH /api/payments/:paymentId/mark-paid.
func (h *Handler) MarkPaymentPaid(c *gin.Context) {
	id, ok := idParam(c, "paymentId")
	if !ok {
		return
	}
	payment, err := h.store.MarkPaymentPaid(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
