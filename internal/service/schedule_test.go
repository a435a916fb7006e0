package service

import (
	"testing"
	"time"

	"github.com/Hemanth-Kumar-P/weekly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) models.Date {
	return models.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestGenerateSchedule(t *testing.T) {
	customer := &models.Customer{
		ID:          7,
		Name:        "Ravi",
		Phone:       "9876543210",
		TotalAmount: 100,
		DateTaken:   date(2024, time.January, 1), // a Monday
	}
	customer.Recompute()

	payments, err := GenerateSchedule(customer, date(2024, time.January, 1))
	require.NoError(t, err)
	require.Len(t, payments, 10)

	for i, p := range payments {
		assert.Equal(t, int64(7), p.CustomerID)
		assert.Equal(t, i+1, p.WeekNumber)
		assert.Equal(t, 10.0, p.Amount)
		assert.Equal(t, models.StatusDue, p.Status)
		assert.Nil(t, p.PaidDate)

		// due dates are exactly a week apart, starting one week in
		expected := date(2024, time.January, 1).AddDays(7 * (i + 1))
		assert.Equal(t, expected, p.PaymentDate)
	}
	assert.Equal(t, date(2024, time.January, 8), payments[0].PaymentDate)
	assert.Equal(t, date(2024, time.March, 11), payments[9].PaymentDate)
}

func TestGenerateScheduleBackdated(t *testing.T) {
	today := date(2024, time.June, 24)
	customer := &models.Customer{
		TotalAmount: 200,
		DateTaken:   today.AddDays(-21),
	}
	customer.Recompute()

	payments, err := GenerateSchedule(customer, today)
	require.NoError(t, err)
	require.Len(t, payments, 10)

	// weeks 1 and 2 were due before today and are born MISSED;
	// week 3 is due today and counts as DUE
	assert.Equal(t, models.StatusMissed, payments[0].Status)
	assert.Equal(t, models.StatusMissed, payments[1].Status)
	assert.Equal(t, models.StatusDue, payments[2].Status)
	for _, p := range payments[3:] {
		assert.Equal(t, models.StatusDue, p.Status)
	}
}

func TestGenerateScheduleRejectsNonPositivePrincipal(t *testing.T) {
	customer := &models.Customer{TotalAmount: 0, DateTaken: date(2024, time.January, 1)}
	_, err := GenerateSchedule(customer, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrValidation)

	customer.TotalAmount = -50
	_, err = GenerateSchedule(customer, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClassifyStatus(t *testing.T) {
	today := date(2024, time.May, 15)

	assert.Equal(t, models.StatusMissed, ClassifyStatus(today.AddDays(-1), today))
	assert.Equal(t, models.StatusDue, ClassifyStatus(today, today))
	assert.Equal(t, models.StatusDue, ClassifyStatus(today.AddDays(1), today))
}

func TestWeekBounds(t *testing.T) {
	monday := date(2024, time.January, 1)
	sunday := date(2024, time.January, 7)

	for d := 0; d < 7; d++ {
		start, end := WeekBounds(monday.AddDays(d))
		assert.Equal(t, monday, start)
		assert.Equal(t, sunday, end)
	}

	start, end := WeekBounds(date(2024, time.January, 8))
	assert.Equal(t, date(2024, time.January, 8), start)
	assert.Equal(t, date(2024, time.January, 14), end)
}

func TestWeeklyInstallment(t *testing.T) {
	assert.Equal(t, 10.0, models.WeeklyInstallment(95))
	assert.Equal(t, 10.0, models.WeeklyInstallment(100))
	assert.Equal(t, 11.0, models.WeeklyInstallment(101))
	assert.Equal(t, 1.0, models.WeeklyInstallment(5))
}
