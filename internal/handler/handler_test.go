package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Hemanth-Kumar-P/weekly/internal/config"
	"github.com/Hemanth-Kumar-P/weekly/internal/models"
	"github.com/Hemanth-Kumar-P/weekly/internal/repository"
	"github.com/Hemanth-Kumar-P/weekly/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubStore implements only the repository.Store methods a test touches;
// anything else panics through the embedded nil interface.
type stubStore struct {
	repository.Store
	admins    map[string]models.Admin
	customers map[int64]models.Customer
	payments  map[int64]models.Payment
	nextID    int64
}

func newStubStore() *stubStore {
	return &stubStore{
		admins:    map[string]models.Admin{},
		customers: map[int64]models.Customer{},
		payments:  map[int64]models.Payment{},
	}
}

func (s *stubStore) FindAdminByPhone(phone string) (*models.Admin, error) {
	admin, ok := s.admins[phone]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	return &admin, nil
}

func (s *stubStore) CreateCustomerWithSchedule(customer *models.Customer, payments []models.Payment) error {
	s.nextID++
	customer.ID = s.nextID
	s.customers[customer.ID] = *customer
	for i := range payments {
		s.nextID++
		payments[i].CustomerID = customer.ID
		payments[i].ID = s.nextID
		s.payments[payments[i].ID] = payments[i]
	}
	return nil
}

func (s *stubStore) FindCustomerByID(id int64) (*models.Customer, error) {
	customer, ok := s.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return &customer, nil
}

func (s *stubStore) FindPaymentByID(id int64) (*models.Payment, error) {
	payment, ok := s.payments[id]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	return &payment, nil
}

func (s *stubStore) FindPaymentsByCustomerID(customerID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	for _, p := range s.payments {
		if p.CustomerID == customerID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (s *stubStore) UpdatePayment(payment *models.Payment) error {
	if _, ok := s.payments[payment.ID]; !ok {
		return repository.ErrPaymentNotFound
	}
	s.payments[payment.ID] = *payment
	return nil
}

func (s *stubStore) CountCustomers() (int64, error)                         { return 0, nil }
func (s *stubStore) SumTotalAmount() (float64, error)                       { return 0, nil }
func (s *stubStore) SumPaidAmount() (float64, error)                        { return 0, nil }
func (s *stubStore) SumPaidAmountBetween(_, _ models.Date) (float64, error) { return 0, nil }
func (s *stubStore) CountMissedPayments() (int64, error)                    { return 0, nil }

func newTestHandler(t *testing.T) (*Handler, *stubStore) {
	t.Helper()
	store := newStubStore()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", AdminPhone: "7815981315", AdminPassword: "Phk@1234"}
	return NewHandler(service.NewService(store, logger, cfg, nil)), store
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

func TestLogin(t *testing.T) {
	h, store := newTestHandler(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("Phk@1234"), bcrypt.MinCost)
	require.NoError(t, err)
	store.admins["7815981315"] = models.Admin{ID: 1, Phone: "7815981315", PasswordHash: string(hash)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/login",
		strings.NewReader(`{"phone":"7815981315","password":"Phk@1234"}`))
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	decodeResponse(t, rec, &body)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/admin/login",
		strings.NewReader(`{"phone":"7815981315","password":"nope"}`))
	h.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	decodeResponse(t, rec, &body)
	assert.Equal(t, false, body["success"])
}

func TestCreateCustomer(t *testing.T) {
	h, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/customers",
		strings.NewReader(`{"name":"Ravi Kumar","phone":"9876543210","totalAmount":95,"dateOfAmountTaken":"2024-06-19"}`))
	h.CreateCustomer(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var customer models.Customer
	decodeResponse(t, rec, &customer)
	assert.Equal(t, 10.0, customer.WeeklyAmount)
	assert.Equal(t, "WEDNESDAY", customer.DayTaken)
	assert.Len(t, customer.Payments, 10)
	assert.Len(t, store.payments, 10)

	// non-positive principal is rejected before any scheduling happens
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/customers",
		strings.NewReader(`{"name":"Ravi Kumar","phone":"9876543210","totalAmount":0,"dateOfAmountTaken":"2024-06-19"}`))
	h.CreateCustomer(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	router := mux.NewRouter()
	router.HandleFunc("/api/customers/{id:[0-9]+}", h.GetCustomer).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/customers/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePaymentStatus(t *testing.T) {
	h, store := newTestHandler(t)
	store.payments[3] = models.Payment{
		ID: 3, CustomerID: 1, Amount: 10, Status: models.StatusDue, WeekNumber: 1,
		PaymentDate: models.NewDate(time.Date(2024, time.June, 26, 0, 0, 0, 0, time.UTC)),
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/payments/{paymentId:[0-9]+}/status", h.UpdatePaymentStatus).Methods("PUT")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/payments/3/status", strings.NewReader(`{"status":"PAID"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payment models.Payment
	decodeResponse(t, rec, &payment)
	assert.Equal(t, models.StatusPaid, payment.Status)
	assert.NotNil(t, payment.PaidDate)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/payments/3/status", strings.NewReader(`{"status":"SETTLED"}`))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsEmpty(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest("GET", "/api/admin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.Stats
	decodeResponse(t, rec, &stats)
	assert.Equal(t, models.Stats{}, stats)
}
