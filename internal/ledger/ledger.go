// Package ledger holds the in-memory account computations: running
// balances, overdue notifications, the percentage-increase amount and
// the customer search filter. Everything here is a pure function over
// collections fetched wholesale from the store; nothing mutates its
// inputs or touches I/O.
package ledger

import (
	"strings"
	"time"
)

// Balance folds a customer's transactions into the amount owed.
// Purchases add, payments subtract. A customer with no transactions
// owes zero. The result may go negative when payments exceed
// purchases; that is valid and counts as up to date.
func Balance(customerID string, txs []Transaction) float64 {
	var balance float64
	for _, t := range txs {
		if t.CustomerID != customerID {
			continue
		}
		if t.Kind == KindPurchase {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
	}
	return balance
}

// IncreaseAmount returns the synthesized purchase amount for a
// percentage increase over the given balance.
func IncreaseAmount(balance, percentage float64) float64 {
	return balance * percentage / 100
}

// Notifications derives one notification per customer whose balance is
// strictly positive and whose most recent payment is older than one
// calendar month before now, or who never paid at all. The result
// follows the order of the customers slice and is recomputed on every
// call.
func Notifications(customers []Customer, txs []Transaction, now time.Time) []Notification {
	cutoff := now.AddDate(0, -1, 0)
	var out []Notification
	for _, c := range customers {
		if n, ok := notificationFor(c, txs, cutoff); ok {
			out = append(out, n)
		}
	}
	return out
}

func notificationFor(c Customer, txs []Transaction, cutoff time.Time) (Notification, bool) {
	balance := Balance(c.ID, txs)
	if balance <= 0 {
		return Notification{}, false
	}

	var lastPayment time.Time
	paid := false
	for _, t := range txs {
		if t.CustomerID != c.ID || t.Kind != KindPayment {
			continue
		}
		if !paid || t.CreatedAt.After(lastPayment) {
			lastPayment = t.CreatedAt
			paid = true
		}
	}
	if paid && !lastPayment.Before(cutoff) {
		return Notification{}, false
	}

	return Notification{
		CustomerID:     c.ID,
		CustomerName:   c.FullName(),
		Message:        NotificationMessage,
		PendingBalance: balance,
	}, true
}

// FilterCustomers returns the customers whose concatenated name and
// document contain the query, case-insensitively. An empty query
// matches everyone. Order is preserved; the match is substring only.
func FilterCustomers(customers []Customer, query string) []Customer {
	if query == "" {
		return customers
	}
	q := strings.ToLower(query)
	var out []Customer
	for _, c := range customers {
		haystack := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.DocumentID)
		if strings.Contains(haystack, q) {
			out = append(out, c)
		}
	}
	return out
}

// CustomerTransactions returns the subsequence of txs owned by the
// customer, preserving store order (timestamp descending).
func CustomerTransactions(customerID string, txs []Transaction) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}
