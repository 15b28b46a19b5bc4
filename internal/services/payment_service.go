package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
)

// PaymentService fronts the ledger's payment endpoints: creating the pending
// escrow plus gateway payment, and verifying completion. The saved payment
// method comes from the injected store, never from ambient state.
type PaymentService struct {
	Ledger    *repositories.LedgerClient
	Methods   repositories.PaymentMethodStore
	Snapshots *SnapshotService
}

// InitiateInput is the poster-side request to fund an accepted offer.
type InitiateInput struct {
	TaskID        string
	PerformerUID  string
	Amount        decimal.Decimal
	PaymentMethod string
}

// Initiate creates the pending escrow and returns the gateway redirect. When
// no method is given the user's saved default is used; a method given
// explicitly becomes the new default.
func (s *PaymentService) Initiate(ctx context.Context, posterUID string, in InitiateInput) (repositories.InitiatePaymentResponse, error) {
	if in.TaskID == "" {
		return repositories.InitiatePaymentResponse{}, &models.ValidationError{Field: "task_id", Reason: "required"}
	}
	if in.Amount.Sign() <= 0 {
		return repositories.InitiatePaymentResponse{}, &models.ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}

	method := in.PaymentMethod
	if method == "" {
		saved, err := s.Methods.Load(ctx, posterUID)
		if err == nil {
			method = saved.Method
		} else if !errors.Is(err, models.ErrNoPaymentMethod) {
			return repositories.InitiatePaymentResponse{}, err
		}
	}

	resp, err := s.Ledger.InitiatePayment(ctx, repositories.InitiatePaymentRequest{
		TaskID:        in.TaskID,
		PosterUID:     posterUID,
		PerformerUID:  in.PerformerUID,
		Amount:        in.Amount,
		PaymentMethod: method,
	})
	if err != nil {
		return repositories.InitiatePaymentResponse{}, err
	}

	if in.PaymentMethod != "" {
		_ = s.Methods.Save(ctx, posterUID, models.PaymentMethod{Method: in.PaymentMethod})
	}
	if s.Snapshots != nil {
		_ = s.Snapshots.Invalidate(ctx, posterUID)
	}
	return resp, nil
}

// Verify confirms a gateway payment with the ledger and returns the escrow as
// the ledger now records it. The snapshot is invalidated for both parties so
// no view keeps showing the pre-capture state.
func (s *PaymentService) Verify(ctx context.Context, viewerUID, paymentID string) (models.Escrow, error) {
	if paymentID == "" {
		return models.Escrow{}, &models.ValidationError{Field: "payment_id", Reason: "required"}
	}
	e, err := s.Ledger.VerifyPayment(ctx, paymentID)
	if err != nil {
		return models.Escrow{}, err
	}
	if s.Snapshots != nil {
		_ = s.Snapshots.Invalidate(ctx, e.PosterUID)
		_ = s.Snapshots.Invalidate(ctx, e.PerformerUID)
	}
	return e, nil
}
