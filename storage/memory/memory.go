// Package memory provides in-process adapters for the repository ports.
// Intended for tests and embedded use; a durable deployment supplies its own
// adapters.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
)

// ErrCreditNotFound is returned when a credit id has no snapshot.
var ErrCreditNotFound = errors.New("credit not found")

// CreditRepository keeps credit snapshots and payment records in memory.
// Mutating operations are serialized by the store mutex.
type CreditRepository struct {
	mu       sync.RWMutex
	credits  map[string]model.Credit
	payments map[string]model.Payment
}

// NewCreditRepository returns an empty store.
func NewCreditRepository() *CreditRepository {
	return &CreditRepository{
		credits:  make(map[string]model.Credit),
		payments: make(map[string]model.Payment),
	}
}

// FindByID returns the stored snapshot of a credit.
func (r *CreditRepository) FindByID(_ context.Context, id string) (model.Credit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.credits[id]
	if !ok {
		return model.Credit{}, fmt.Errorf("credit %s: %w", id, ErrCreditNotFound)
	}
	return c, nil
}

// Save stores the credit snapshot, replacing any previous one. Events are not
// stripped; the caller publishes and clears them.
func (r *CreditRepository) Save(_ context.Context, credit model.Credit) error {
	if credit.ID() == "" {
		return errors.New("credit id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credits[credit.ID()] = credit
	return nil
}

// SavePayment stores a payment record. Duplicate payment ids are rejected so
// a replayed submission cannot double-book.
func (r *CreditRepository) SavePayment(_ context.Context, payment model.Payment) error {
	if payment.ID == "" {
		return errors.New("payment id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.ID]; ok {
		return fmt.Errorf("payment %s already recorded", payment.ID)
	}
	r.payments[payment.ID] = payment
	return nil
}

// PaymentsByCredit returns the recorded payments for a credit.
func (r *CreditRepository) PaymentsByCredit(creditID string) []model.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Payment
	for _, p := range r.payments {
		if p.CreditID == creditID {
			out = append(out, p)
		}
	}
	return out
}
