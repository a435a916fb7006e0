package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Hemanth-Kumar-P/weekly/internal/models"
)

// Repository provides database operations backed by Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the schema if it does not exist yet.
func (r *Repository) Migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL CHECK (total_amount > 0),
		date_taken DATE NOT NULL,
		day_taken TEXT NOT NULL,
		weekly_amount DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_customers_phone ON customers (phone);

	CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers (id) ON DELETE CASCADE,
		payment_date DATE NOT NULL,
		amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		status TEXT NOT NULL CHECK (status IN ('PAID', 'DUE', 'MISSED')),
		week_number INT NOT NULL CHECK (week_number BETWEEN 1 AND 10),
		paid_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (customer_id, week_number)
	);
	CREATE INDEX IF NOT EXISTS idx_payments_status ON payments (status);

	CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		phone TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// CreateCustomerWithSchedule inserts a customer and their repayment
// schedule within one transaction, so a failed schedule insert never
// leaves an orphan customer behind. Payment rows get the generated
// customer id before insertion.
func (r *Repository) CreateCustomerWithSchedule(customer *models.Customer, payments []models.Payment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	customerQuery := `
		INSERT INTO customers (name, phone, total_amount, date_taken, day_taken, weekly_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(customerQuery, customer.Name, customer.Phone, customer.TotalAmount,
		customer.DateTaken, customer.DayTaken, customer.WeeklyAmount).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	paymentQuery := `
		INSERT INTO payments (customer_id, payment_date, amount, status, week_number, paid_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	for i := range payments {
		p := &payments[i]
		p.CustomerID = customer.ID
		err := tx.QueryRow(paymentQuery, p.CustomerID, p.PaymentDate, p.Amount, string(p.Status), p.WeekNumber, paidDateArg(p.PaidDate)).
			Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create payment for week %d: %w", p.WeekNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit customer with schedule: %w", err)
	}
	return nil
}

const customerColumns = `id, name, phone, total_amount, date_taken, day_taken, weekly_amount, created_at, updated_at`

func scanCustomer(row interface{ Scan(...interface{}) error }) (*models.Customer, error) {
	customer := &models.Customer{}
	err := row.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.TotalAmount,
		&customer.DateTaken, &customer.DayTaken, &customer.WeeklyAmount,
		&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// FindCustomerByID retrieves a customer by id
func (r *Repository) FindCustomerByID(id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	customer, err := scanCustomer(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return customer, nil
}

// FindAllCustomers retrieves every customer ordered by id
func (r *Repository) FindAllCustomers() ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id`
	return r.queryCustomers(query)
}

// FindCustomersByPhone retrieves customers with the given phone number.
// Phone numbers are not unique; one borrower may hold several loans.
func (r *Repository) FindCustomersByPhone(phone string) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1 ORDER BY id`
	return r.queryCustomers(query, phone)
}

func (r *Repository) queryCustomers(query string, args ...interface{}) ([]*models.Customer, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer updates an existing customer
func (r *Repository) UpdateCustomer(customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, total_amount = $3, date_taken = $4, day_taken = $5, weekly_amount = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING updated_at`
	err := r.db.QueryRow(query, customer.Name, customer.Phone, customer.TotalAmount,
		customer.DateTaken, customer.DayTaken, customer.WeeklyAmount, customer.ID).
		Scan(&customer.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrCustomerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// DeleteCustomer removes a customer; its payments go with it (ON DELETE CASCADE)
func (r *Repository) DeleteCustomer(id int64) error {
	result, err := r.db.Exec(`DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// CountCustomers returns the number of customer records
func (r *Repository) CountCustomers() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// SumTotalAmount returns the sum of all principals handed out
func (r *Repository) SumTotalAmount() (float64, error) {
	var sum float64
	err := r.db.QueryRow(`SELECT COALESCE(SUM(total_amount), 0) FROM customers`).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum principals: %w", err)
	}
	return sum, nil
}

func paidDateArg(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

const paymentColumns = `id, customer_id, payment_date, amount, status, week_number, paid_date, created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	payment := &models.Payment{}
	var paidDate sql.NullTime
	err := row.Scan(&payment.ID, &payment.CustomerID, &payment.PaymentDate, &payment.Amount,
		&payment.Status, &payment.WeekNumber, &paidDate, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if paidDate.Valid {
		d := models.NewDate(paidDate.Time)
		payment.PaidDate = &d
	}
	return payment, nil
}

// FindPaymentByID retrieves a payment by id
func (r *Repository) FindPaymentByID(id int64) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	payment, err := scanPayment(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return payment, nil
}

// FindPaymentsByCustomerID retrieves a customer's schedule in repayment order
func (r *Repository) FindPaymentsByCustomerID(customerID int64) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1 ORDER BY week_number`
	return r.queryPayments(query, customerID)
}

// FilterPayments retrieves payments matching the filter. The date range
// applies to the paid date and both bounds are inclusive; the status filter
// intersects with it.
func (r *Repository) FilterPayments(filter PaymentFilter) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	conditions := []string{}
	args := []interface{}{}

	if filter.StartDate != nil && filter.EndDate != nil {
		conditions = append(conditions,
			fmt.Sprintf("paid_date IS NOT NULL AND paid_date BETWEEN $%d AND $%d", len(args)+1, len(args)+2))
		args = append(args, *filter.StartDate, *filter.EndDate)
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(*filter.Status))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY payment_date, id"

	return r.queryPayments(query, args...)
}

func (r *Repository) queryPayments(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment updates an existing payment
func (r *Repository) UpdatePayment(payment *models.Payment) error {
	query := `
		UPDATE payments
		SET payment_date = $1, amount = $2, status = $3, week_number = $4, paid_date = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at`
	err := r.db.QueryRow(query, payment.PaymentDate, payment.Amount, string(payment.Status),
		payment.WeekNumber, paidDateArg(payment.PaidDate), payment.ID).
		Scan(&payment.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrPaymentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

// DeletePayment removes a single payment
func (r *Repository) DeletePayment(id int64) error {
	result, err := r.db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// SumPaidAmount returns the total amount collected so far
func (r *Repository) SumPaidAmount() (float64, error) {
	var sum float64
	err := r.db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'PAID'`).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum paid amounts: %w", err)
	}
	return sum, nil
}

// SumPaidAmountBetween returns the amount collected with a paid date inside [start, end]
func (r *Repository) SumPaidAmountBetween(start, end models.Date) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'PAID' AND paid_date BETWEEN $1 AND $2`
	err := r.db.QueryRow(query, start, end).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum paid amounts in range: %w", err)
	}
	return sum, nil
}

// CountMissedPayments returns the number of missed installments
func (r *Repository) CountMissedPayments() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM payments WHERE status = 'MISSED'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count missed payments: %w", err)
	}
	return count, nil
}

// CreateAdmin creates a new admin account
func (r *Repository) CreateAdmin(admin *models.Admin) error {
	query := `
		INSERT INTO admins (phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, admin.Phone, admin.PasswordHash).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindAdminByPhone retrieves an admin by phone number
func (r *Repository) FindAdminByPhone(phone string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, phone, password_hash, created_at, updated_at FROM admins WHERE phone = $1`
	err := r.db.QueryRow(query, phone).
		Scan(&admin.ID, &admin.Phone, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return admin, nil
}

// UpdateAdmin updates an existing admin account
func (r *Repository) UpdateAdmin(admin *models.Admin) error {
	query := `
		UPDATE admins
		SET phone = $1, password_hash = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING updated_at`
	err := r.db.QueryRow(query, admin.Phone, admin.PasswordHash, admin.ID).Scan(&admin.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrAdminNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	return nil
}
