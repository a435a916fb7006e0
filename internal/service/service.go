package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hemanth-Kumar-P/weekly/internal/config"
	"github.com/Hemanth-Kumar-P/weekly/internal/repository"
	"github.com/Hemanth-Kumar-P/weekly/internal/utils/email"
	"github.com/sirupsen/logrus"
)

// ErrValidation marks errors caused by invalid caller input. Handlers map
// it to a 400 response.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Service handles business logic
type Service struct {
	repo   repository.Store
	log    *logrus.Logger
	config *config.Config
	mailer *email.Sender // nil disables the weekly summary mail

	now func() time.Time
}

// NewService initializes a new service
func NewService(repo repository.Store, log *logrus.Logger, cfg *config.Config, mailer *email.Sender) *Service {
	return &Service{repo: repo, log: log, config: cfg, mailer: mailer, now: time.Now}
}
