package repository

import (
	"time"

	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

type dbCustomer struct {
	ID         string    `db:"id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	DocumentID string    `db:"document_id"`
	Phone      string    `db:"phone"`
	CreatedAt  time.Time `db:"created_at"`
}

func toCustomer(c dbCustomer) ledger.Customer {
	return ledger.Customer(c)
}

func toCustomers(cs []dbCustomer) []ledger.Customer {
	out := make([]ledger.Customer, len(cs))
	for i, c := range cs {
		out[i] = toCustomer(c)
	}
	return out
}

type dbTransaction struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	Kind       string    `db:"kind"`
	Amount     float64   `db:"amount"`
	Note       string    `db:"note"`
	CreatedAt  time.Time `db:"created_at"`
}

func toTransaction(t dbTransaction) ledger.Transaction {
	return ledger.Transaction{
		ID:         t.ID,
		CustomerID: t.CustomerID,
		Kind:       ledger.Kind(t.Kind),
		Amount:     t.Amount,
		Note:       t.Note,
		CreatedAt:  t.CreatedAt,
	}
}

func toTransactions(ts []dbTransaction) []ledger.Transaction {
	out := make([]ledger.Transaction, len(ts))
	for i, t := range ts {
		out[i] = toTransaction(t)
	}
	return out
}
