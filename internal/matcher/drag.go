package matcher

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"crane-recon/internal/domain"
)

// DragContext holds the interaction state of one matching board: the
// transactions and payments on screen and the transaction being dragged.
// At most one drag is active at a time.
type DragContext struct {
	engine       *ReconciliationEngine
	transactions map[string]domain.BankTransaction
	payments     []domain.Payment
	active       *domain.BankTransaction
	now          func() time.Time
}

// NewDragContext creates a board over the given snapshot
func (e *ReconciliationEngine) NewDragContext(transactions []domain.BankTransaction, payments []domain.Payment) *DragContext {
	byID := make(map[string]domain.BankTransaction, len(transactions))
	for _, tx := range transactions {
		byID[tx.ID] = tx
	}
	return &DragContext{
		engine:       e,
		transactions: byID,
		payments:     payments,
		now:          time.Now,
	}
}

// Begin makes the transaction the active drag source
func (d *DragContext) Begin(transactionID string) error {
	if d.active != nil {
		return domain.ErrDragInProgress
	}
	tx, ok := d.transactions[transactionID]
	if !ok {
		return fmt.Errorf("bank transaction %s: %w", transactionID, domain.ErrNotFound)
	}
	if !tx.IsPending() {
		return fmt.Errorf("bank transaction %s is %s: %w", transactionID, tx.Status, domain.ErrConflict)
	}
	d.active = &tx
	return nil
}

// Active returns the transaction being dragged, or nil
func (d *DragContext) Active() *domain.BankTransaction {
	return d.active
}

// Cancel ends the drag without producing a proposal
func (d *DragContext) Cancel() {
	d.active = nil
}

// CanConfirmPayment reports whether payments may be confirmed directly.
// Direct confirmation is hidden while a drag is in progress.
func (d *DragContext) CanConfirmPayment() bool {
	return d.active == nil
}

// DropTargets classifies every payment against the active transaction.
// It returns nil when nothing is being dragged.
func (d *DragContext) DropTargets() []domain.PaymentListItem {
	if d.active == nil {
		return nil
	}
	items := make([]domain.PaymentListItem, len(d.payments))
	for i, p := range d.payments {
		candidate := d.engine.Evaluate(*d.active, p)
		items[i] = domain.PaymentListItem{Payment: p, DropPreview: &candidate}
	}
	return items
}

// Drop releases the active transaction on a payment and returns the pairing
// awaiting confirmation. The drag ends either way; nothing is persisted.
func (d *DragContext) Drop(paymentID string) (*domain.MatchProposal, error) {
	if d.active == nil {
		return nil, fmt.Errorf("no transaction is being dragged: %w", domain.ErrConflict)
	}
	tx := *d.active
	d.active = nil

	for _, p := range d.payments {
		if p.ID != paymentID {
			continue
		}
		if !p.IsPending() {
			return nil, fmt.Errorf("payment %s is %s: %w", paymentID, p.Status, domain.ErrConflict)
		}
		candidate := d.engine.Evaluate(tx, p)
		return &domain.MatchProposal{
			ID:          uuid.New().String(),
			Transaction: tx,
			Payment:     p,
			Difference:  candidate.Difference,
			Quality:     candidate.Quality,
			CreatedAt:   d.now(),
		}, nil
	}
	return nil, fmt.Errorf("payment %s: %w", paymentID, domain.ErrNotFound)
}
