package handlers

import (
	"errors"
	"net/http"
	"testing"

	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
)

func TestErrorStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		if status := errorStatus(models.ErrEscrowNotFound); status != http.StatusNotFound {
			t.Fatalf("expected %d, got %d", http.StatusNotFound, status)
		}
	})

	t.Run("stale release maps to conflict", func(t *testing.T) {
		if status := errorStatus(models.ErrEscrowNotReleasable); status != http.StatusConflict {
			t.Fatalf("expected %d, got %d", http.StatusConflict, status)
		}
	})

	t.Run("validation", func(t *testing.T) {
		err := &models.ValidationError{Field: "amount", Reason: "must be positive"}
		if status := errorStatus(err); status != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("integrity is distinct from absence", func(t *testing.T) {
		err := &models.DataIntegrityError{Entity: "escrow", ID: "e1", Reason: "unknown status"}
		if status := errorStatus(err); status != http.StatusBadGateway {
			t.Fatalf("expected %d, got %d", http.StatusBadGateway, status)
		}
	})

	t.Run("ledger 4xx propagates", func(t *testing.T) {
		status := errorStatus(&repositories.LedgerError{StatusCode: http.StatusUnprocessableEntity})
		if status != http.StatusUnprocessableEntity {
			t.Fatalf("expected %d, got %d", http.StatusUnprocessableEntity, status)
		}
	})

	t.Run("ledger 5xx defaults to bad gateway", func(t *testing.T) {
		status := errorStatus(&repositories.LedgerError{StatusCode: http.StatusInternalServerError})
		if status != http.StatusBadGateway {
			t.Fatalf("expected %d, got %d", http.StatusBadGateway, status)
		}
	})

	t.Run("unknown errors are internal", func(t *testing.T) {
		if status := errorStatus(errors.New("boom")); status != http.StatusInternalServerError {
			t.Fatalf("expected %d, got %d", http.StatusInternalServerError, status)
		}
	})
}
