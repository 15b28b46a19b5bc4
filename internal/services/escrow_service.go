package services

import (
	"context"
	"strings"

	"taskbazaar/internal/escrow"
	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
	"taskbazaar/internal/timeutil"
)

// EscrowService orchestrates escrow reads and mutation requests. It never
// updates its own view of a status: release and refund are proxied to the
// ledger and the cached snapshot is invalidated so callers refetch before
// re-deriving allowed actions.
type EscrowService struct {
	Ledger    *repositories.LedgerClient
	Snapshots *SnapshotService
}

// ViewForTask fetches the task's escrow and resolves the projection for the
// viewer. The viewer's role is derived from the record itself: posters and
// performers see different messages and actions.
func (s *EscrowService) ViewForTask(ctx context.Context, taskID, viewerUID string) (models.EscrowView, error) {
	e, err := s.Ledger.GetEscrowByTask(ctx, taskID)
	if err != nil {
		return models.EscrowView{}, err
	}
	role, err := roleFor(e, viewerUID)
	if err != nil {
		return models.EscrowView{}, err
	}
	return ResolveEscrowView(e, role, timeutil.Now())
}

// GetEscrow returns the raw record after an integrity check, for parties only.
func (s *EscrowService) GetEscrow(ctx context.Context, escrowID, viewerUID string) (models.Escrow, error) {
	e, err := s.Ledger.GetEscrowByID(ctx, escrowID)
	if err != nil {
		return models.Escrow{}, err
	}
	if _, err := roleFor(e, viewerUID); err != nil {
		return models.Escrow{}, err
	}
	if err := escrow.ValidateRecord(e); err != nil {
		return models.Escrow{}, err
	}
	return e, nil
}

// Release requests release of held funds. The escrow is re-fetched first and
// checked against the state machine, so a stale client acting on an old
// snapshot gets models.ErrEscrowNotReleasable instead of a remote rejection.
func (s *EscrowService) Release(ctx context.Context, escrowID, viewerUID string) error {
	e, err := s.Ledger.GetEscrowByID(ctx, escrowID)
	if err != nil {
		return err
	}
	if e.PosterUID != viewerUID {
		return models.ErrNotEscrowParty
	}
	if !escrow.CanRelease(e.Status) {
		return models.ErrEscrowNotReleasable
	}
	if err := s.Ledger.RequestRelease(ctx, escrowID); err != nil {
		return err
	}
	s.invalidateParties(ctx, e)
	return nil
}

// Refund requests a refund of the escrow to the poster. A reason is required.
func (s *EscrowService) Refund(ctx context.Context, escrowID, viewerUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &models.ValidationError{Field: "reason", Reason: "refund reason is required"}
	}
	e, err := s.Ledger.GetEscrowByID(ctx, escrowID)
	if err != nil {
		return err
	}
	if _, err := roleFor(e, viewerUID); err != nil {
		return err
	}
	if !escrow.CanRefund(e.Status) {
		return models.ErrEscrowNotRefundable
	}
	if err := s.Ledger.RequestRefund(ctx, escrowID, reason); err != nil {
		return err
	}
	s.invalidateParties(ctx, e)
	return nil
}

func (s *EscrowService) invalidateParties(ctx context.Context, e models.Escrow) {
	if s.Snapshots == nil {
		return
	}
	_ = s.Snapshots.Invalidate(ctx, e.PosterUID)
	_ = s.Snapshots.Invalidate(ctx, e.PerformerUID)
}

func roleFor(e models.Escrow, uid string) (string, error) {
	switch uid {
	case e.PosterUID:
		return models.RolePoster, nil
	case e.PerformerUID:
		return models.RolePerformer, nil
	default:
		return "", models.ErrNotEscrowParty
	}
}
