package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*LedgerClient, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/sign-in" {
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token"})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	c, err := NewLedgerClient(LedgerConfig{
		BaseURL:   ts.URL,
		ServiceID: "svc",
		APIKey:    "key",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c, ts
}

func TestGetEscrowByTask(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.Query().Get("task_id") != "task_9" {
			t.Errorf("unexpected task_id %q", r.URL.Query().Get("task_id"))
		}
		_ = json.NewEncoder(w).Encode(models.Escrow{
			ID:     "esc_9",
			TaskID: "task_9",
			Amount: decimal.NewFromInt(750),
			Status: "held",
		})
	})

	e, err := c.GetEscrowByTask(context.Background(), "task_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "esc_9" || e.Status != "held" {
		t.Errorf("unexpected escrow: %+v", e)
	}
	if !e.Amount.Equal(decimal.NewFromInt(750)) {
		t.Errorf("unexpected amount: %s", e.Amount)
	}
}

func TestGetEscrowByTaskNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no escrow", http.StatusNotFound)
	})

	_, err := c.GetEscrowByTask(context.Background(), "task_without_escrow")
	if !errors.Is(err, models.ErrEscrowNotFound) {
		t.Fatalf("expected ErrEscrowNotFound, got %v", err)
	}
}

func TestRequestReleaseSendsIdempotencyKey(t *testing.T) {
	var gotKey string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.WriteHeader(http.StatusAccepted)
	})

	if err := c.RequestRelease(context.Background(), "esc_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey == "" {
		t.Fatal("release must carry an Idempotency-Key header")
	}
}

func TestNon2xxReturnsLedgerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already released"}`))
	})

	err := c.RequestRelease(context.Background(), "esc_1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *LedgerError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected LedgerError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("unexpected status code: %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("expected body to be populated")
	}
}

func TestGetFeeQuote(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("amount") != "200" {
			t.Errorf("unexpected amount %q", r.URL.Query().Get("amount"))
		}
		_ = json.NewEncoder(w).Encode(models.FeeBreakdown{
			GrossAmount: decimal.NewFromInt(200),
			PlatformFee: decimal.NewFromInt(10),
			NetAmount:   decimal.NewFromInt(190),
			Currency:    "INR",
		})
	})

	fb, err := c.GetFeeQuote(context.Background(), decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fb.NetAmount.Equal(decimal.NewFromInt(190)) {
		t.Errorf("unexpected net amount: %s", fb.NetAmount)
	}
}

func TestNewLedgerClientRequiresConfig(t *testing.T) {
	if _, err := NewLedgerClient(LedgerConfig{BaseURL: "https://x", ServiceID: "svc"}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
