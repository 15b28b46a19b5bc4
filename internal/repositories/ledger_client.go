package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
)

// LedgerConfig configures the client for the remote ledger service, the
// source of truth for escrows, transactions and current-status snapshots.
type LedgerConfig struct {
	// Пример: https://ledger.taskbazaar.in/api
	BaseURL   string
	ServiceID string
	APIKey    string

	Client *http.Client
	Logger *slog.Logger
}

// LedgerClient talks to the remote ledger API. All reads return the remote
// record as-is; mutations carry an idempotency key and return only
// success or failure, so callers must refetch before re-deriving any view.
type LedgerClient struct {
	baseURL   *url.URL
	serviceID string
	apiKey    string

	httpClient *http.Client
	logger     *slog.Logger

	// jwt cache
	mu          sync.Mutex
	accessToken string
	tokenExp    time.Time
}

func NewLedgerClient(cfg LedgerConfig) (*LedgerClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" ||
		strings.TrimSpace(cfg.ServiceID) == "" ||
		strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("ledger: base_url/service_id/api_key are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}

	c := &LedgerClient{
		baseURL:    u,
		serviceID:  cfg.ServiceID,
		apiKey:     cfg.APIKey,
		httpClient: client,
		logger:     logger,
	}
	logger.Info("ledger client initialized", "baseURL", u.String())
	return c, nil
}

// ------- AUTH (JWT) -------

func (c *LedgerClient) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExp) > 2*time.Minute {
		return c.accessToken, nil
	}
	type signInReq struct {
		ServiceID string `json:"service_id"`
		APIKey    string `json:"api_key"`
	}
	type signInResp struct {
		AccessToken string `json:"access_token"`
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/auth/sign-in")
	body, _ := json.Marshal(signInReq{ServiceID: c.serviceID, APIKey: c.apiKey})

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("auth failed: %s %s", resp.Status, strings.TrimSpace(string(b)))
	}
	var out signInResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("auth decode: %w", err)
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return "", errors.New("auth: empty access_token")
	}
	c.accessToken = out.AccessToken
	c.tokenExp = time.Now().Add(55 * time.Minute)
	return c.accessToken, nil
}

// doJSON performs one authorized request and decodes the response into out
// when out is non-nil. Non-2xx responses become a *LedgerError.
func (c *LedgerClient) doJSON(ctx context.Context, method, p string, query url.Values, in, out any, idempotencyKey string) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger request %s %s: %w", method, p, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	c.logger.Debug("ledger response", "method", method, "path", p, "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &LedgerError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(b)}
	}
	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, p, err)
		}
	}
	return nil
}

// ------- READS -------

// GetEscrowByTask fetches the escrow attached to a task. Absence is a normal
// state for tasks without an accepted paid offer yet and maps to
// models.ErrEscrowNotFound.
func (c *LedgerClient) GetEscrowByTask(ctx context.Context, taskID string) (models.Escrow, error) {
	var e models.Escrow
	q := url.Values{"task_id": {taskID}}
	err := c.doJSON(ctx, http.MethodGet, "/v1/escrows", q, nil, &e, "")
	if err != nil {
		return models.Escrow{}, escrowNotFoundFrom(err)
	}
	return e, nil
}

// GetEscrowByID fetches one escrow record.
func (c *LedgerClient) GetEscrowByID(ctx context.Context, escrowID string) (models.Escrow, error) {
	var e models.Escrow
	err := c.doJSON(ctx, http.MethodGet, "/v1/escrows/"+escrowID, nil, nil, &e, "")
	if err != nil {
		return models.Escrow{}, escrowNotFoundFrom(err)
	}
	return e, nil
}

// GetCurrentStatus fetches the user's pending-state snapshot and stats.
func (c *LedgerClient) GetCurrentStatus(ctx context.Context, uid string) (models.UserCurrentStatus, error) {
	var cs models.UserCurrentStatus
	err := c.doJSON(ctx, http.MethodGet, "/v1/users/"+uid+"/current_status", nil, nil, &cs, "")
	if err != nil {
		return models.UserCurrentStatus{}, err
	}
	cs.UserID = uid
	cs.FetchedAt = time.Now()
	return cs, nil
}

// GetTransactions fetches one page of a user's transaction history.
func (c *LedgerClient) GetTransactions(ctx context.Context, uid string, page, limit int) (models.TransactionPage, error) {
	var tp models.TransactionPage
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	err := c.doJSON(ctx, http.MethodGet, "/v1/users/"+uid+"/transactions", q, nil, &tp, "")
	return tp, err
}

// GetFeeQuote asks the ledger for the fee breakdown of an amount. The
// contract is identical to the local calculator; it exists for the callers
// that must show the remote's authoritative figure.
func (c *LedgerClient) GetFeeQuote(ctx context.Context, amount decimal.Decimal) (models.FeeBreakdown, error) {
	var fb models.FeeBreakdown
	q := url.Values{"amount": {amount.String()}}
	err := c.doJSON(ctx, http.MethodGet, "/v1/fees/quote", q, nil, &fb, "")
	return fb, err
}

// ------- MUTATIONS -------

// InitiatePaymentRequest asks the ledger to create a pending escrow and a
// gateway payment for an accepted offer.
type InitiatePaymentRequest struct {
	TaskID        string          `json:"task_id"`
	PosterUID     string          `json:"poster_uid"`
	PerformerUID  string          `json:"performer_uid"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// InitiatePaymentResponse carries the gateway redirect for the client.
type InitiatePaymentResponse struct {
	EscrowID   string `json:"escrow_id"`
	PaymentID  string `json:"payment_id"`
	PaymentURL string `json:"payment_url"`
	Status     string `json:"status"`
}

func (c *LedgerClient) InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (InitiatePaymentResponse, error) {
	var out InitiatePaymentResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/payments", nil, req, &out, uuid.NewString())
	return out, err
}

// VerifyPayment confirms a gateway payment completed and returns the escrow
// as the ledger now records it.
func (c *LedgerClient) VerifyPayment(ctx context.Context, paymentID string) (models.Escrow, error) {
	var e models.Escrow
	err := c.doJSON(ctx, http.MethodPost, "/v1/payments/"+paymentID+"/verify", nil, nil, &e, uuid.NewString())
	return e, err
}

// RequestRelease asks the ledger to release held funds to the performer.
// The call returns success/failure only; the caller must refetch before
// showing the transition.
func (c *LedgerClient) RequestRelease(ctx context.Context, escrowID string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/escrows/"+escrowID+"/release", nil, nil, nil, uuid.NewString())
}

// RequestRefund asks the ledger to refund held funds to the poster.
func (c *LedgerClient) RequestRefund(ctx context.Context, escrowID, reason string) error {
	body := map[string]string{"reason": reason}
	return c.doJSON(ctx, http.MethodPost, "/v1/escrows/"+escrowID+"/refund", nil, body, nil, uuid.NewString())
}

// ---------- helpers ----------

func escrowNotFoundFrom(err error) error {
	var apiErr *LedgerError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return models.ErrEscrowNotFound
	}
	return err
}

// LedgerError is a non-2xx answer from the ledger API.
type LedgerError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *LedgerError) Error() string {
	if e == nil {
		return "<nil>"
	}
	bt := strings.TrimSpace(e.Body)
	if bt == "" {
		return fmt.Sprintf("ledger error: %s", e.Status)
	}
	return fmt.Sprintf("ledger error: %s: %s", e.Status, bt)
}
