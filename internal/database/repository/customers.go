// Package repository implements the store contract consumed by the
// TUI against the hosted PostgreSQL service.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limadaniel-ar/tienda-cuentas/internal/database"
	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

// CustomerRepo handles customers.
type CustomerRepo struct {
	log *slog.Logger
	db  database.DB
}

func NewCustomerRepo(log *slog.Logger, db database.DB) *CustomerRepo {
	return &CustomerRepo{log: log, db: db}
}

// ListCustomers returns every customer, newest first.
func (r *CustomerRepo) ListCustomers(ctx context.Context) ([]ledger.Customer, error) {
	const q = `
	SELECT id, first_name, last_name, document_id, phone, created_at
	FROM customers
	ORDER BY created_at DESC`

	r.log.Debug("db.query", "op", "customers.list")

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[dbCustomer])
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return toCustomers(out), nil
}

// CreateCustomer inserts a customer and returns the stored row, id and
// creation time assigned by the service.
func (r *CustomerRepo) CreateCustomer(ctx context.Context, nc ledger.NewCustomer) (ledger.Customer, error) {
	const q = `
	INSERT INTO customers (first_name, last_name, document_id, phone)
	VALUES ($1, $2, $3, $4)
	RETURNING id, first_name, last_name, document_id, phone, created_at`

	r.log.Debug("db.exec", "op", "customers.create", "document", nc.DocumentID)

	rows, err := r.db.Query(ctx, q, nc.FirstName, nc.LastName, nc.DocumentID, nc.Phone)
	if err != nil {
		return ledger.Customer{}, fmt.Errorf("create customer: %w", mapError(err))
	}
	defer rows.Close()

	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[dbCustomer])
	if err != nil {
		return ledger.Customer{}, fmt.Errorf("create customer: %w", mapError(err))
	}
	return toCustomer(c), nil
}

// UpdateCustomer replaces all editable fields of the customer.
func (r *CustomerRepo) UpdateCustomer(ctx context.Context, id string, nc ledger.NewCustomer) error {
	const q = `
	UPDATE customers
	SET first_name = $2, last_name = $3, document_id = $4, phone = $5
	WHERE id = $1`

	r.log.Debug("db.exec", "op", "customers.update", "id", id)

	tag, err := r.db.Exec(ctx, q, id, nc.FirstName, nc.LastName, nc.DocumentID, nc.Phone)
	if err != nil {
		return fmt.Errorf("update customer: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes the customer. Its transactions are retained
// as orphans; no cleanup is issued here.
func (r *CustomerRepo) DeleteCustomer(ctx context.Context, id string) error {
	const q = `DELETE FROM customers WHERE id = $1`

	r.log.Debug("db.exec", "op", "customers.delete", "id", id)

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// mapError translates driver errors into the sentinel errors callers
// compare against.
func mapError(err error) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == pgerrcode.UniqueViolation {
		return ledger.ErrDuplicateDocument
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.ErrNotFound
	}
	return err
}
