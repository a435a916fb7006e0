package service

import (
	"github.com/Hemanth-Kumar-P/weekly/internal/models"
	"github.com/Hemanth-Kumar-P/weekly/internal/repository"
	"github.com/sirupsen/logrus"
)

// PaymentsByCustomer retrieves a customer's schedule in repayment order.
func (s *Service) PaymentsByCustomer(customerID int64) ([]models.Payment, error) {
	return s.repo.FindPaymentsByCustomerID(customerID)
}

// UpdatePaymentStatus moves a payment to the given status. Any status may
// follow any other; moving to PAID stamps the paid date with today unless
// already set, moving elsewhere clears it.
func (s *Service) UpdatePaymentStatus(id int64, status models.PaymentStatus) (*models.Payment, error) {
	if !status.Valid() {
		return nil, validationErrorf("unknown payment status %q", status)
	}

	payment, err := s.repo.FindPaymentByID(id)
	if err != nil {
		return nil, err
	}

	payment.ApplyStatus(status, s.now())
	if err := s.repo.UpdatePayment(payment); err != nil {
		return nil, err
	}

	s.log.Infof("Payment %d (customer %d, week %d) marked %s",
		payment.ID, payment.CustomerID, payment.WeekNumber, payment.Status)
	return payment, nil
}

// DeletePayment removes a single payment record.
func (s *Service) DeletePayment(id int64) error {
	if err := s.repo.DeletePayment(id); err != nil {
		return err
	}
	s.log.Infof("Payment %d deleted", id)
	return nil
}

// PaymentReports retrieves payments for the reporting screen. The date
// range filters on the paid date (both bounds inclusive), so a report over
// a period only ever lists money actually collected in it; the status
// filter intersects with the range.
func (s *Service) PaymentReports(filter repository.PaymentFilter) ([]models.Payment, error) {
	return s.repo.FilterPayments(filter)
}

// Stats aggregates portfolio-wide collection statistics as of today.
// Every field is zero, never absent, on an empty database.
func (s *Service) Stats() (*models.Stats, error) {
	totalCustomers, err := s.repo.CountCustomers()
	if err != nil {
		return nil, err
	}
	totalGiven, err := s.repo.SumTotalAmount()
	if err != nil {
		return nil, err
	}
	received, err := s.repo.SumPaidAmount()
	if err != nil {
		return nil, err
	}
	weekStart, weekEnd := WeekBounds(models.NewDate(s.now()))
	thisWeek, err := s.repo.SumPaidAmountBetween(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	missed, err := s.repo.CountMissedPayments()
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalCustomers:    totalCustomers,
		TotalAmountGiven:  totalGiven,
		AmountReceived:    received,
		ThisWeekCollected: thisWeek,
		MissedPayments:    missed,
	}, nil
}

// WeeklySummary logs the current portfolio statistics and, when mail is
// configured, sends them to the report address. Read-only: it never
// touches installment status.
func (s *Service) WeeklySummary() {
	stats, err := s.Stats()
	if err != nil {
		s.log.Errorf("Failed to compute weekly summary: %v", err)
		return
	}

	weekStart, weekEnd := WeekBounds(models.NewDate(s.now()))
	s.log.WithFields(logrus.Fields{
		"customers":           stats.TotalCustomers,
		"total_given":         stats.TotalAmountGiven,
		"amount_received":     stats.AmountReceived,
		"this_week_collected": stats.ThisWeekCollected,
		"missed_payments":     stats.MissedPayments,
	}).Info("Weekly collection summary")

	if s.mailer == nil || !s.config.MailEnabled() {
		return
	}
	if err := s.mailer.SendWeeklySummary(s.config.ReportEmail, stats, weekStart, weekEnd); err != nil {
		s.log.Errorf("Failed to send weekly summary: %v", err)
	}
}
