package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"taskbazaar/internal/services"
)

type TransactionHandler struct {
	Service *services.TransactionService
}

// GetTransactions returns one page of the viewer's history with display
// filters applied on top. Unparseable min/max amount bounds are dropped, not
// rejected; malformed dates are a 400.
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := services.TransactionFilter{
		Status:    q.Get("status"),
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		MinAmount: q.Get("min_amount"),
		MaxAmount: q.Get("max_amount"),
	}

	tp, err := h.Service.History(r.Context(), viewerUID(r), page, limit, filter)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	json.NewEncoder(w).Encode(tp)
}
