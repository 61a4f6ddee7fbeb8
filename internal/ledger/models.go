package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Set of errors surfaced by the ledger and its stores.
var (
	ErrNotFound          = errors.New("customer not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDuplicateDocument = errors.New("a customer with that document already exists")
)

// Kind discriminates the two transaction types.
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindPayment  Kind = "payment"
)

// Customer is a merchant's account-holding client.
type Customer struct {
	ID         string
	FirstName  string
	LastName   string
	DocumentID string
	Phone      string
	CreatedAt  time.Time
}

// FullName returns the display name used in lists and notifications.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// NewCustomer holds the editable fields of a customer form.
type NewCustomer struct {
	FirstName  string
	LastName   string
	DocumentID string
	Phone      string
}

// Validate checks the required fields. Phone is optional.
func (nc NewCustomer) Validate() error {
	if strings.TrimSpace(nc.FirstName) == "" ||
		strings.TrimSpace(nc.LastName) == "" ||
		strings.TrimSpace(nc.DocumentID) == "" {
		return fmt.Errorf("%w: first name, last name and document are required", ErrInvalidArgument)
	}
	return nil
}

// Transaction is a purchase or payment event tied to one customer.
// Transactions are immutable once created; the amount is stored
// unsigned and the kind carries the sign.
type Transaction struct {
	ID         string
	CustomerID string
	Kind       Kind
	Amount     float64
	Note       string
	CreatedAt  time.Time
}

// Validate checks a transaction before it is handed to the store.
func (t Transaction) Validate() error {
	switch {
	case t.CustomerID == "":
		return fmt.Errorf("%w: missing customer", ErrInvalidArgument)
	case t.Kind != KindPurchase && t.Kind != KindPayment:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, t.Kind)
	case t.Amount < 0:
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidArgument)
	}
	return nil
}

// Notification flags a customer with a positive balance and a stale
// payment. It is derived on demand and never persisted.
type Notification struct {
	CustomerID     string
	CustomerName   string
	Message        string
	PendingBalance float64
}

// NotificationMessage is the fixed text attached to every notification.
const NotificationMessage = "no payments in the last month"
