package models

import (
	"math"
	"strings"
	"time"
)

// Customer represents a borrower and the lump sum taken out
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	TotalAmount  float64   `json:"totalAmount"`
	DateTaken    Date      `json:"dateOfAmountTaken"`
	DayTaken     string    `json:"dayOfAmountTaken"`
	WeeklyAmount float64   `json:"weeklyAmount"`
	Payments     []Payment `json:"payments,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// WeeklyInstallment returns the per-week repayment for a principal, rounded
// up to the next whole unit. Ten equal installments may therefore sum to
// slightly more than the principal; the remainder is not redistributed.
func WeeklyInstallment(principal float64) float64 {
	return math.Ceil(principal / 10.0)
}

// Recompute refreshes the derived fields from the principal and the date
// the amount was taken. Must be called whenever either of them changes.
func (c *Customer) Recompute() {
	c.WeeklyAmount = WeeklyInstallment(c.TotalAmount)
	c.DayTaken = strings.ToUpper(c.DateTaken.Weekday().String())
}
