package handlers

import (
	"errors"
	"net/http"

	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
)

// errorStatus maps service errors onto HTTP statuses. Validation problems are
// the caller's fault; integrity violations mean the ledger handed us a record
// outside its own contract, which is a different thing from the record being
// absent.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrEscrowNotFound),
		errors.Is(err, models.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNotEscrowParty):
		return http.StatusForbidden
	case errors.Is(err, models.ErrEscrowNotReleasable),
		errors.Is(err, models.ErrEscrowNotRefundable):
		return http.StatusConflict
	}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ie *models.DataIntegrityError
	if errors.As(err, &ie) {
		return http.StatusBadGateway
	}
	return ledgerErrorStatus(err)
}

// ledgerErrorStatus propagates 4xx answers from the ledger API and folds
// everything else into 502.
func ledgerErrorStatus(err error) int {
	var apiErr *repositories.LedgerError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// viewerUID pulls the authenticated user id the JWT middleware put on the
// request context.
func viewerUID(r *http.Request) string {
	uid, _ := r.Context().Value("user_id").(string)
	return uid
}
