package service

import (
	"strings"

	"github.com/Hemanth-Kumar-P/weekly/internal/models"
)

// CustomerInput carries the caller-supplied fields of a customer record.
type CustomerInput struct {
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	TotalAmount float64     `json:"totalAmount"`
	DateTaken   models.Date `json:"dateOfAmountTaken"`
}

func (in *CustomerInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationErrorf("name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return validationErrorf("phone number is required")
	}
	if in.TotalAmount <= 0 {
		return validationErrorf("total amount must be positive")
	}
	if in.DateTaken.IsZero() {
		return validationErrorf("date of amount taken is required")
	}
	return nil
}

// CreateCustomer stores a new customer and generates their ten-week
// repayment schedule. Customer and schedule are persisted as one unit;
// if any part fails nothing is committed.
func (s *Service) CreateCustomer(input CustomerInput) (*models.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:        input.Name,
		Phone:       input.Phone,
		TotalAmount: input.TotalAmount,
		DateTaken:   input.DateTaken,
	}
	customer.Recompute()

	payments, err := GenerateSchedule(customer, models.NewDate(s.now()))
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateCustomerWithSchedule(customer, payments); err != nil {
		return nil, err
	}
	customer.Payments = payments

	s.log.Infof("Customer created: %s (%s), principal %.2f repaid %.2f/week",
		customer.Name, customer.Phone, customer.TotalAmount, customer.WeeklyAmount)
	return customer, nil
}

// GetCustomer retrieves a customer with their schedule attached.
func (s *Service) GetCustomer(id int64) (*models.Customer, error) {
	customer, err := s.repo.FindCustomerByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.attachPayments(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetAllCustomers retrieves every customer with their schedules attached.
func (s *Service) GetAllCustomers() ([]*models.Customer, error) {
	customers, err := s.repo.FindAllCustomers()
	if err != nil {
		return nil, err
	}
	if err := s.attachPayments(customers...); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomersByPhone retrieves the customers registered under a phone number.
func (s *Service) GetCustomersByPhone(phone string) ([]*models.Customer, error) {
	customers, err := s.repo.FindCustomersByPhone(phone)
	if err != nil {
		return nil, err
	}
	if err := s.attachPayments(customers...); err != nil {
		return nil, err
	}
	return customers, nil
}

// SearchCustomers filters customers by a name substring (case-insensitive)
// or a phone substring.
func (s *Service) SearchCustomers(query string) ([]*models.Customer, error) {
	customers, err := s.repo.FindAllCustomers()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := []*models.Customer{}
	for _, customer := range customers {
		if strings.Contains(strings.ToLower(customer.Name), needle) ||
			strings.Contains(customer.Phone, query) {
			matched = append(matched, customer)
		}
	}
	if err := s.attachPayments(matched...); err != nil {
		return nil, err
	}
	return matched, nil
}

// UpdateCustomer updates a customer's own fields and recomputes the derived
// ones. Already-generated payments keep their original amounts and dates.
func (s *Service) UpdateCustomer(id int64, input CustomerInput) (*models.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer, err := s.repo.FindCustomerByID(id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.TotalAmount = input.TotalAmount
	customer.DateTaken = input.DateTaken
	customer.Recompute()

	if err := s.repo.UpdateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.attachPayments(customer); err != nil {
		return nil, err
	}

	s.log.Infof("Customer %d updated", customer.ID)
	return customer, nil
}

// DeleteCustomer removes a customer together with their whole schedule.
func (s *Service) DeleteCustomer(id int64) error {
	if err := s.repo.DeleteCustomer(id); err != nil {
		return err
	}
	s.log.Infof("Customer %d deleted", id)
	return nil
}

func (s *Service) attachPayments(customers ...*models.Customer) error {
	for _, customer := range customers {
		payments, err := s.repo.FindPaymentsByCustomerID(customer.ID)
		if err != nil {
			return err
		}
		customer.Payments = payments
	}
	return nil
}
