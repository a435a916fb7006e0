package repository

import (
	"errors"

	"github.com/Hemanth-Kumar-P/weekly/internal/models"
)

var (
	// ErrCustomerNotFound is returned when a customer id or phone matches no record.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrPaymentNotFound is returned when a payment id matches no record.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAdminNotFound is returned when an admin phone matches no record.
	ErrAdminNotFound = errors.New("admin not found")
)

// PaymentFilter narrows a payment report query. Nil fields are not applied.
// The date range matches the paid date, so unpaid installments are excluded
// whenever a range is given.
type PaymentFilter struct {
	StartDate *models.Date
	EndDate   *models.Date
	Status    *models.PaymentStatus
}

// Store defines the persistence operations the service layer depends on.
type Store interface {
	// CreateCustomerWithSchedule inserts a customer together with their
	// whole repayment schedule in one transaction; a failure anywhere
	// leaves neither behind.
	CreateCustomerWithSchedule(customer *models.Customer, payments []models.Payment) error
	FindCustomerByID(id int64) (*models.Customer, error)
	FindAllCustomers() ([]*models.Customer, error)
	FindCustomersByPhone(phone string) ([]*models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id int64) error
	CountCustomers() (int64, error)
	SumTotalAmount() (float64, error)

	FindPaymentByID(id int64) (*models.Payment, error)
	FindPaymentsByCustomerID(customerID int64) ([]models.Payment, error)
	FilterPayments(filter PaymentFilter) ([]models.Payment, error)
	UpdatePayment(payment *models.Payment) error
	DeletePayment(id int64) error
	SumPaidAmount() (float64, error)
	SumPaidAmountBetween(start, end models.Date) (float64, error)
	CountMissedPayments() (int64, error)

	CreateAdmin(admin *models.Admin) error
	FindAdminByPhone(phone string) (*models.Admin, error)
	UpdateAdmin(admin *models.Admin) error
}
