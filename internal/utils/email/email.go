package email

import (
	"fmt"
	"net/smtp"

	"github.com/Hemanth-Kumar-P/weekly/internal/config"
	"github.com/Hemanth-Kumar-P/weekly/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendWeeklySummary mails the portfolio statistics for the week [weekStart, weekEnd]
func (s *Sender) SendWeeklySummary(to string, stats *models.Stats, weekStart, weekEnd models.Date) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Weekly Collection Summary (%s - %s)", weekStart, weekEnd)

	body := fmt.Sprintf(
		"Collection summary for the week %s to %s:\n\n"+
			"Customers:            %d\n"+
			"Total amount given:   %.2f\n"+
			"Amount received:      %.2f\n"+
			"Collected this week:  %.2f\n"+
			"Missed payments:      %d\n",
		weekStart, weekEnd,
		stats.TotalCustomers, stats.TotalAmountGiven, stats.AmountReceived,
		stats.ThisWeekCollected, stats.MissedPayments,
	)
	body += "\nBest regards,\nWeekly"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
