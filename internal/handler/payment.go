package handler

import (
	"fmt"
	"net/http"

	"github.com/Hemanth-Kumar-P/weekly/internal/models"
	"github.com/Hemanth-Kumar-P/weekly/internal/repository"
	"github.com/Hemanth-Kumar-P/weekly/internal/service"
)

// PaymentsByCustomer returns a customer's schedule in repayment order
func (h *Handler) PaymentsByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, err)
		return
	}
	payments, err := h.svc.PaymentsByCustomer(customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

// UpdatePaymentStatus moves a payment to a new status
func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paymentId")
	if err != nil {
		respondError(w, err)
		return
	}
	var req struct {
		Status models.PaymentStatus `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	payment, err := h.svc.UpdatePaymentStatus(id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

// DeletePayment removes a single payment
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paymentId")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.DeletePayment(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Payment deleted successfully"})
}

// PaymentReports returns payments filtered by paid-date range and status
func (h *Handler) PaymentReports(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}
	payments, err := h.svc.PaymentReports(filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

func reportFilter(r *http.Request) (repository.PaymentFilter, error) {
	filter := repository.PaymentFilter{}
	q := r.URL.Query()

	if raw := q.Get("startDate"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid startDate", service.ErrValidation)
		}
		filter.StartDate = &date
	}
	if raw := q.Get("endDate"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid endDate", service.ErrValidation)
		}
		filter.EndDate = &date
	}
	if raw := q.Get("status"); raw != "" {
		status := models.PaymentStatus(raw)
		if !status.Valid() {
			return filter, fmt.Errorf("%w: unknown payment status %q", service.ErrValidation, raw)
		}
		filter.Status = &status
	}
	return filter, nil
}
