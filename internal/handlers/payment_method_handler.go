package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
)

type PaymentMethodHandler struct {
	Store repositories.PaymentMethodStore
}

func (h *PaymentMethodHandler) GetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	m, err := h.Store.Load(r.Context(), viewerUID(r))
	if errors.Is(err, models.ErrNoPaymentMethod) {
		http.Error(w, "no saved payment method", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(m)
}

func (h *PaymentMethodHandler) SavePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var m models.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if m.Method == "" {
		http.Error(w, "missing method", http.StatusBadRequest)
		return
	}
	if err := h.Store.Save(r.Context(), viewerUID(r), m); err != nil {
		http.Error(w, "Failed to save", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(m)
}

func (h *PaymentMethodHandler) ClearPaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Clear(r.Context(), viewerUID(r)); err != nil {
		http.Error(w, "Failed to delete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
