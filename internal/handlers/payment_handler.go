package handlers

import (
	"encoding/json"
	"net/http"

	"taskbazaar/internal/metrics"
	"taskbazaar/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskID        string `json:"task_id"`
		PerformerUID  string `json:"performer_uid"`
		Amount        string `json:"amount"`
		PaymentMethod string `json:"payment_method,omitempty"`
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
	resp, err := h.Service.Initiate(r.Context(), viewerUID(r), services.InitiateInput{
		TaskID:        req.TaskID,
		PerformerUID:  req.PerformerUID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		metrics.LedgerMutationsTotal.WithLabelValues("initiate", "error").Inc()
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	metrics.LedgerMutationsTotal.WithLabelValues("initiate", "ok").Inc()
	json.NewEncoder(w).Encode(resp)
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentID string `json:"payment_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	e, err := h.Service.Verify(r.Context(), viewerUID(r), req.PaymentID)
	if err != nil {
		metrics.LedgerMutationsTotal.WithLabelValues("verify", "error").Inc()
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	metrics.LedgerMutationsTotal.WithLabelValues("verify", "ok").Inc()
	json.NewEncoder(w).Encode(e)
}
