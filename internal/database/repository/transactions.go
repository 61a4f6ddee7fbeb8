package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/limadaniel-ar/tienda-cuentas/internal/database"
	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

// TransactionRepo handles transactions. There is no update or delete:
// transactions are immutable once written.
type TransactionRepo struct {
	log *slog.Logger
	db  database.DB
}

func NewTransactionRepo(log *slog.Logger, db database.DB) *TransactionRepo {
	return &TransactionRepo{log: log, db: db}
}

// ListTransactions returns every transaction, newest first.
func (r *TransactionRepo) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	const q = `
	SELECT id, customer_id, kind, amount, note, created_at
	FROM transactions
	ORDER BY created_at DESC`

	r.log.Debug("db.query", "op", "transactions.list")

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[dbTransaction])
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return toTransactions(out), nil
}

// CreateTransaction inserts a validated transaction.
func (r *TransactionRepo) CreateTransaction(ctx context.Context, t ledger.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	const q = `
	INSERT INTO transactions (id, customer_id, kind, amount, note)
	VALUES ($1, $2, $3, $4, $5)`

	r.log.Debug("db.exec", "op", "transactions.create", "customer_id", t.CustomerID, "kind", t.Kind)

	if _, err := r.db.Exec(ctx, q, t.ID, t.CustomerID, string(t.Kind), t.Amount, t.Note); err != nil {
		return fmt.Errorf("create transaction: %w", mapError(err))
	}
	return nil
}
