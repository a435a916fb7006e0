package handler

import (
	"net/http"

	"github.com/Hemanth-Kumar-P/weekly/internal/service"
	"github.com/gorilla/mux"
)

// ListCustomers returns every customer with their repayment schedule
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.GetAllCustomers()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// GetCustomer returns a single customer by id
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	customer, err := h.svc.GetCustomer(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// GetCustomersByPhone returns the customers registered under a phone number
func (h *Handler) GetCustomersByPhone(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.GetCustomersByPhone(mux.Vars(r)["phone"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// SearchCustomers filters customers by name or phone substring
func (h *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.SearchCustomers(r.URL.Query().Get("query"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// CreateCustomer registers a customer and generates their schedule
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input service.CustomerInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	customer, err := h.svc.CreateCustomer(input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

// UpdateCustomer updates a customer's details
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.CustomerInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	customer, err := h.svc.UpdateCustomer(id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// DeleteCustomer removes a customer and their whole schedule
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.DeleteCustomer(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
