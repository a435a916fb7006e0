package models

import "time"

// PaymentStatus is the lifecycle state of a single weekly installment.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "PAID"
	StatusDue    PaymentStatus = "DUE"
	StatusMissed PaymentStatus = "MISSED"
)

// Valid reports whether s is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusDue, StatusMissed:
		return true
	}
	return false
}

// Payment represents one weekly installment of a customer's repayment schedule
type Payment struct {
	ID          int64         `json:"id"`
	CustomerID  int64         `json:"customerId"`
	PaymentDate Date          `json:"paymentDate"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status"`
	WeekNumber  int           `json:"weekNumber"`
	PaidDate    *Date         `json:"paidDate,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ApplyStatus transitions the payment to the given status. Any status may
// follow any other. Moving to PAID stamps the paid date with "now" unless
// one is already set; moving anywhere else clears it.
func (p *Payment) ApplyStatus(status PaymentStatus, now time.Time) {
	p.Status = status
	if status == StatusPaid {
		if p.PaidDate == nil {
			d := NewDate(now)
			p.PaidDate = &d
		}
		return
	}
	p.PaidDate = nil
}
