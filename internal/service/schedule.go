package service

import (
	"github.com/Hemanth-Kumar-P/weekly/internal/models"
)

// scheduleWeeks is the fixed length of every repayment plan.
const scheduleWeeks = 10

// ClassifyStatus derives the lifecycle state of an installment due on
// dueDate as seen from today: a due date already in the past means MISSED,
// today or later means DUE.
//
// This runs once, at schedule generation. Nothing re-classifies a DUE
// installment after its date passes; marking it MISSED afterwards is the
// operator's call through the status update endpoint.
func ClassifyStatus(dueDate, today models.Date) models.PaymentStatus {
	if dueDate.Time.Before(today.Time) {
		return models.StatusMissed
	}
	return models.StatusDue
}

// GenerateSchedule produces the ten weekly installments for a customer,
// the first due one week after the amount was taken. Each carries the
// customer's weekly amount as computed at generation time. Pure function;
// persisting the result is the caller's job.
func GenerateSchedule(customer *models.Customer, today models.Date) ([]models.Payment, error) {
	if customer.TotalAmount <= 0 {
		return nil, validationErrorf("total amount must be positive")
	}
	if customer.DateTaken.IsZero() {
		return nil, validationErrorf("date of amount taken is required")
	}

	payments := make([]models.Payment, 0, scheduleWeeks)
	for week := 1; week <= scheduleWeeks; week++ {
		dueDate := customer.DateTaken.AddDays(7 * week)
		payments = append(payments, models.Payment{
			CustomerID:  customer.ID,
			PaymentDate: dueDate,
			Amount:      customer.WeeklyAmount,
			Status:      ClassifyStatus(dueDate, today),
			WeekNumber:  week,
		})
	}
	return payments, nil
}

// WeekBounds returns the Monday and Sunday of the ISO week containing day.
func WeekBounds(day models.Date) (models.Date, models.Date) {
	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	start := day.AddDays(-offset)
	return start, start.AddDays(6)
}
