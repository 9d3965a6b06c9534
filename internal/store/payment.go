package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-management-backend/internal/model"
)

var paymentTypes = map[string]bool{
	model.PaymentRent: true, model.PaymentDeposit: true, model.PaymentMess: true, model.PaymentOther: true,
}

var paymentStatuses = map[string]bool{
	model.PaymentPending: true, model.PaymentPaid: true, model.PaymentOverdue: true,
}

// paymentContext joins a payment to its student and, through the linked
// allocation or else the student's current one, to the bed location.
func paymentContext(tx *gorm.DB) *gorm.DB {
	return tx.Table("payments AS p").
		Joins("JOIN students s ON s.id = p.student_id").
		Joins(`LEFT JOIN allocations a ON a.id = COALESCE(p.allocation_id,
			(SELECT a2.id FROM allocations a2 WHERE a2.student_id = p.student_id AND a2.status = ? ORDER BY a2.id DESC LIMIT 1))`,
			model.AllocationActive).
		Joins("LEFT JOIN beds b ON b.id = a.bed_id").
		Joins("LEFT JOIN rooms r ON r.id = b.room_id").
		Joins("LEFT JOIN floors f ON f.id = r.floor_id").
		Joins("LEFT JOIN hostels h ON h.id = f.hostel_id")
}

// ListPayments returns all payments, newest first.
func (s *gormStore) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments := []model.Payment{}
	if err := s.db.WithContext(ctx).Order(`"date" DESC, id DESC`).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// CreatePayment records a due or a collection. Date defaults to today and
// status to pending. A linked allocation must belong to the same student.
func (s *gormStore) CreatePayment(ctx context.Context, payment *model.Payment) error {
	if !payment.Amount.IsPositive() {
		return validationError("amount", "amount must be greater than zero")
	}
	if !paymentTypes[payment.Type] {
		return validationError("type", "type must be one of rent, deposit, mess, other")
	}
	if payment.Status == "" {
		payment.Status = model.PaymentPending
	}
	if !paymentStatuses[payment.Status] {
		return validationError("status", "status must be one of pending, paid, overdue")
	}
	if payment.Date.Time().IsZero() {
		payment.Date = s.today()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Student{}, payment.StudentID, "student"); err != nil {
			return err
		}
		if payment.AllocationID != nil {
			var alloc model.Allocation
			if err := tx.First(&alloc, *payment.AllocationID).Error; err != nil {
				return notFoundOr(err, "allocation", *payment.AllocationID)
			}
			if alloc.StudentID != payment.StudentID {
				return validationError("allocationId", "allocation %d does not belong to student %d", alloc.ID, payment.StudentID)
			}
		}
		return tx.Create(payment).Error
	})
}

// DuePayments lists pending and overdue payments for the collections
// call-list, earliest due date first and undated dues last.
func (s *gormStore) DuePayments(ctx context.Context) ([]DuePayment, error) {
	rows := []DuePayment{}
	err := paymentContext(s.db.WithContext(ctx)).
		Select(`p.id AS payment_id, p.student_id, s.name AS student_name, s.mobile AS student_mobile,
			h.name AS hostel_name, f.floor_number, r.room_number,
			p.amount, p.type, p.status, p.due_date`).
		Where("p.status IN ?", []string{model.PaymentPending, model.PaymentOverdue}).
		Order("p.due_date IS NULL, p.due_date, p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TodaysPayments lists payments collected on the current calendar day.
func (s *gormStore) TodaysPayments(ctx context.Context) ([]TodaysPayment, error) {
	rows := []TodaysPayment{}
	err := paymentContext(s.db.WithContext(ctx)).
		Select(`p.id AS payment_id, p.student_id, s.name AS student_name, s.mobile AS student_mobile,
			h.name AS hostel_name, f.floor_number, r.room_number, b.bed_number,
			p.amount, p.type, p.status, p."date"`).
		Where(`p.status = ? AND p."date" = ?`, model.PaymentPaid, s.today()).
		Order("p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkPaymentPaid moves a pending or overdue payment to paid. The payment
// date is left as recorded.
func (s *gormStore) MarkPaymentPaid(ctx context.Context, paymentID int64) (*model.Payment, error) {
	var payment model.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&payment, paymentID).Error; err != nil {
			return notFoundOr(err, "payment", paymentID)
		}
		if payment.Status == model.PaymentPaid {
			return conflictError("status", "payment %d is already paid", payment.ID)
		}
		if err := tx.Model(&payment).Update("status", model.PaymentPaid).Error; err != nil {
			return err
		}
		payment.Status = model.PaymentPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkOverduePayments flags pending payments whose due date has passed and
// returns how many were changed.
func (s *gormStore) MarkOverduePayments(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Payment{}).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", model.PaymentPending, s.today()).
		Update("status", model.PaymentOverdue)
	return res.RowsAffected, res.Error
}
