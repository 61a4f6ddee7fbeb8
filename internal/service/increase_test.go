package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

type fakeTxStore struct {
	created []ledger.Transaction
	err     error
}

func (f *fakeTxStore) CreateTransaction(_ context.Context, t ledger.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, t)
	return nil
}

func snapshot() []ledger.Transaction {
	now := time.Now()
	return []ledger.Transaction{
		{ID: "t1", CustomerID: "c1", Kind: ledger.KindPurchase, Amount: 200, CreatedAt: now},
		{ID: "t2", CustomerID: "c1", Kind: ledger.KindPayment, Amount: 50, CreatedAt: now},
		{ID: "t3", CustomerID: "c2", Kind: ledger.KindPurchase, Amount: 999, CreatedAt: now},
	}
}

func TestApplyTenPercent(t *testing.T) {
	store := &fakeTxStore{}
	svc := &IncreaseService{Transactions: store}

	// balance 150, 10% -> purchase of 15
	applied, ok, err := svc.Apply(context.Background(), "c1", 10, snapshot())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !ok {
		t.Fatal("expected increase to be applied")
	}
	if applied.Amount != 15 {
		t.Fatalf("amount = %v, want 15", applied.Amount)
	}
	if applied.Kind != ledger.KindPurchase {
		t.Fatalf("kind = %q, want purchase", applied.Kind)
	}
	if applied.Note != "applied 10% increase" {
		t.Fatalf("note = %q", applied.Note)
	}
	if len(store.created) != 1 {
		t.Fatalf("store writes = %d, want 1", len(store.created))
	}

	// resulting balance becomes 165
	after := append(snapshot(), store.created...)
	if got := ledger.Balance("c1", after); got != 165 {
		t.Fatalf("balance after increase = %v, want 165", got)
	}
}

func TestApplyNonPositivePercentageIsNoop(t *testing.T) {
	store := &fakeTxStore{}
	svc := &IncreaseService{Transactions: store}

	for _, pct := range []float64{0, -5} {
		_, ok, err := svc.Apply(context.Background(), "c1", pct, snapshot())
		if err != nil {
			t.Fatalf("Apply(%v): %v", pct, err)
		}
		if ok {
			t.Fatalf("Apply(%v) should be a no-op", pct)
		}
	}
	if len(store.created) != 0 {
		t.Fatalf("no-op should not touch the store, wrote %d", len(store.created))
	}
}

func TestApplyNegativeBalanceRejected(t *testing.T) {
	store := &fakeTxStore{}
	svc := &IncreaseService{Transactions: store}

	txs := []ledger.Transaction{
		{ID: "t1", CustomerID: "c1", Kind: ledger.KindPayment, Amount: 40},
	}
	_, ok, err := svc.Apply(context.Background(), "c1", 10, txs)
	if err == nil || ok {
		t.Fatal("negative increase amount should be rejected before the store call")
	}
	if len(store.created) != 0 {
		t.Fatalf("store should not be called, wrote %d", len(store.created))
	}
}

func TestApplyStoreFailureSurfaces(t *testing.T) {
	boom := errors.New("boom")
	svc := &IncreaseService{Transactions: &fakeTxStore{err: boom}}

	_, ok, err := svc.Apply(context.Background(), "c1", 10, snapshot())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if ok {
		t.Fatal("failed apply must not report ok")
	}
}
