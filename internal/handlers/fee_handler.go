package handlers

import (
	"encoding/json"
	"net/http"

	"taskbazaar/internal/services"
)

type FeeHandler struct {
	Service *services.FeeService
}

func (h *FeeHandler) QuoteFees(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	amount, err := services.ParseAmount(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	breakdown, err := h.Service.CalculateFees(amount)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	json.NewEncoder(w).Encode(breakdown)
}
