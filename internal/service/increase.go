// Package service holds the operations that combine in-memory ledger
// computations with store writes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

// TransactionStore is the slice of the store contract the increase
// operation needs.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, t ledger.Transaction) error
}

// IncreaseService applies a percentage increase to a customer's
// balance by appending a synthesized purchase transaction.
//
// The balance is a client-side snapshot of the transactions passed in;
// a concurrent write from another session between the computation and
// the insert is not guarded against.
type IncreaseService struct {
	Log          *slog.Logger
	Transactions TransactionStore
}

// Apply computes balance × percentage / 100 over the snapshot and
// records it as a purchase with a note naming the percentage. A
// percentage of zero or less is a silent no-op; ok reports whether a
// transaction was written.
func (s *IncreaseService) Apply(ctx context.Context, customerID string, percentage float64, txs []ledger.Transaction) (applied ledger.Transaction, ok bool, err error) {
	if percentage <= 0 {
		return ledger.Transaction{}, false, nil
	}

	balance := ledger.Balance(customerID, txs)
	t := ledger.Transaction{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Kind:       ledger.KindPurchase,
		Amount:     ledger.IncreaseAmount(balance, percentage),
		Note:       fmt.Sprintf("applied %g%% increase", percentage),
	}
	if err := t.Validate(); err != nil {
		return ledger.Transaction{}, false, err
	}

	if err := s.Transactions.CreateTransaction(ctx, t); err != nil {
		return ledger.Transaction{}, false, fmt.Errorf("apply increase: %w", err)
	}

	if s.Log != nil {
		s.Log.Info("increase applied", "customer_id", customerID, "percentage", percentage, "amount", t.Amount)
	}
	return t, true, nil
}
