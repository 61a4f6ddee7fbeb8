package ledger

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.AddDate(0, 0, -n) }

func tx(customerID string, kind Kind, amount float64, created time.Time) Transaction {
	return Transaction{ID: "tx", CustomerID: customerID, Kind: kind, Amount: amount, CreatedAt: created}
}

func TestBalanceFold(t *testing.T) {
	txs := []Transaction{
		tx("c1", KindPurchase, 100, daysAgo(5)),
		tx("c1", KindPurchase, 30.5, daysAgo(4)),
		tx("c1", KindPayment, 50, daysAgo(3)),
		tx("c2", KindPurchase, 999, daysAgo(2)),
	}
	if got := Balance("c1", txs); got != 80.5 {
		t.Fatalf("Balance(c1) = %v, want 80.5", got)
	}
	if got := Balance("c2", txs); got != 999 {
		t.Fatalf("Balance(c2) = %v, want 999", got)
	}
}

func TestBalanceEmptyIsZero(t *testing.T) {
	if got := Balance("c1", nil); got != 0 {
		t.Fatalf("Balance with no transactions = %v, want 0", got)
	}
	if got := Balance("c1", []Transaction{tx("other", KindPurchase, 10, now)}); got != 0 {
		t.Fatalf("Balance with only foreign transactions = %v, want 0", got)
	}
}

func TestBalanceMayGoNegative(t *testing.T) {
	txs := []Transaction{
		tx("c1", KindPurchase, 20, daysAgo(10)),
		tx("c1", KindPayment, 50, daysAgo(1)),
	}
	if got := Balance("c1", txs); got != -30 {
		t.Fatalf("Balance = %v, want -30", got)
	}
}

func TestNotificationsNoPaymentEver(t *testing.T) {
	// Scenario A: one purchase of 100, no payments -> included.
	customers := []Customer{{ID: "c1", FirstName: "Ana", LastName: "Gomez"}}
	txs := []Transaction{tx("c1", KindPurchase, 100, daysAgo(2))}

	got := Notifications(customers, txs, now)
	want := []Notification{{
		CustomerID:     "c1",
		CustomerName:   "Ana Gomez",
		Message:        NotificationMessage,
		PendingBalance: 100,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestNotificationsZeroBalanceExcluded(t *testing.T) {
	// Scenario B: purchase fifty days ago fully paid ten days ago.
	customers := []Customer{{ID: "c1", FirstName: "Ana", LastName: "Gomez"}}
	txs := []Transaction{
		tx("c1", KindPurchase, 100, daysAgo(50)),
		tx("c1", KindPayment, 100, daysAgo(10)),
	}
	if got := Notifications(customers, txs, now); len(got) != 0 {
		t.Fatalf("expected no notifications, got %v", got)
	}
}

func TestNotificationsStalePayment(t *testing.T) {
	// Scenario C: purchase 200, payment 50 forty days ago.
	customers := []Customer{{ID: "c1", FirstName: "Ana", LastName: "Gomez"}}
	txs := []Transaction{
		tx("c1", KindPurchase, 200, daysAgo(60)),
		tx("c1", KindPayment, 50, daysAgo(40)),
	}
	got := Notifications(customers, txs, now)
	if len(got) != 1 {
		t.Fatalf("expected one notification, got %d", len(got))
	}
	if got[0].PendingBalance != 150 {
		t.Fatalf("PendingBalance = %v, want 150", got[0].PendingBalance)
	}
}

func TestNotificationsRecentPaymentExcluded(t *testing.T) {
	customers := []Customer{{ID: "c1", FirstName: "Ana", LastName: "Gomez"}}
	txs := []Transaction{
		tx("c1", KindPurchase, 200, daysAgo(60)),
		tx("c1", KindPayment, 50, daysAgo(40)),
		tx("c1", KindPayment, 10, daysAgo(5)), // most recent payment is fresh
	}
	if got := Notifications(customers, txs, now); len(got) != 0 {
		t.Fatalf("recent payment should suppress notification, got %v", got)
	}
}

func TestNotificationsNoTransactionsExcluded(t *testing.T) {
	customers := []Customer{{ID: "c1", FirstName: "Ana", LastName: "Gomez"}}
	if got := Notifications(customers, nil, now); len(got) != 0 {
		t.Fatalf("customer without transactions should not notify, got %v", got)
	}
}

func TestNotificationsIdempotent(t *testing.T) {
	customers := []Customer{
		{ID: "c1", FirstName: "Ana", LastName: "Gomez"},
		{ID: "c2", FirstName: "Luis", LastName: "Paz"},
	}
	txs := []Transaction{
		tx("c1", KindPurchase, 100, daysAgo(2)),
		tx("c2", KindPurchase, 40, daysAgo(90)),
		tx("c2", KindPayment, 10, daysAgo(45)),
	}
	first := Notifications(customers, txs, now)
	second := Notifications(customers, txs, now)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated evaluation differs (-first +second):\n%s", diff)
	}
	if len(first) != 2 {
		t.Fatalf("expected both customers notified, got %d", len(first))
	}
}

func TestNotificationsFollowCustomerOrder(t *testing.T) {
	customers := []Customer{
		{ID: "c2", FirstName: "Luis", LastName: "Paz"},
		{ID: "c1", FirstName: "Ana", LastName: "Gomez"},
	}
	txs := []Transaction{
		tx("c1", KindPurchase, 100, daysAgo(2)),
		tx("c2", KindPurchase, 40, daysAgo(90)),
	}
	got := Notifications(customers, txs, now)
	if len(got) != 2 || got[0].CustomerID != "c2" || got[1].CustomerID != "c1" {
		t.Fatalf("order should follow customers slice, got %v", got)
	}
}

func TestIncreaseAmount(t *testing.T) {
	// Scenario D: 10% of 150 is 15.
	if got := IncreaseAmount(150, 10); got != 15 {
		t.Fatalf("IncreaseAmount(150, 10) = %v, want 15", got)
	}
	if got := IncreaseAmount(0, 25); got != 0 {
		t.Fatalf("IncreaseAmount(0, 25) = %v, want 0", got)
	}
}

func TestFilterCustomers(t *testing.T) {
	customers := []Customer{
		{ID: "c1", FirstName: "Ana", LastName: "Gomez", DocumentID: "30111222"},
		{ID: "c2", FirstName: "Luis", LastName: "Paz", DocumentID: "27888999"},
		{ID: "c3", FirstName: "Anabel", LastName: "Ruiz", DocumentID: "31000555"},
	}

	if got := FilterCustomers(customers, ""); !cmp.Equal(customers, got) {
		t.Fatalf("empty query should return all customers unchanged, got %v", got)
	}
	if got := FilterCustomers(customers, "ANA"); len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Fatalf("case-insensitive substring match failed: %v", got)
	}
	if got := FilterCustomers(customers, "27888"); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("document match failed: %v", got)
	}
	if got := FilterCustomers(customers, "zzzz"); len(got) != 0 {
		t.Fatalf("no-match query should return empty, got %v", got)
	}
}

func TestCustomerTransactionsPreservesOrder(t *testing.T) {
	txs := []Transaction{
		tx("c1", KindPurchase, 3, daysAgo(1)),
		tx("c2", KindPurchase, 9, daysAgo(2)),
		tx("c1", KindPayment, 1, daysAgo(3)),
	}
	got := CustomerTransactions("c1", txs)
	if len(got) != 2 || got[0].Amount != 3 || got[1].Amount != 1 {
		t.Fatalf("unexpected subsequence: %v", got)
	}
}

func TestNewCustomerValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      NewCustomer
		wantErr bool
	}{
		{"complete", NewCustomer{FirstName: "Ana", LastName: "Gomez", DocumentID: "301"}, false},
		{"phone optional", NewCustomer{FirstName: "Ana", LastName: "Gomez", DocumentID: "301", Phone: ""}, false},
		{"missing first", NewCustomer{LastName: "Gomez", DocumentID: "301"}, true},
		{"missing last", NewCustomer{FirstName: "Ana", DocumentID: "301"}, true},
		{"missing document", NewCustomer{FirstName: "Ana", LastName: "Gomez"}, true},
		{"blank counts as missing", NewCustomer{FirstName: "  ", LastName: "Gomez", DocumentID: "301"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{CustomerID: "c1", Kind: KindPurchase, Amount: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}
	if err := (Transaction{CustomerID: "c1", Kind: "refund", Amount: 10}).Validate(); err == nil {
		t.Fatal("unknown kind accepted")
	}
	if err := (Transaction{CustomerID: "c1", Kind: KindPayment, Amount: -1}).Validate(); err == nil {
		t.Fatal("negative amount accepted")
	}
	if err := (Transaction{Kind: KindPayment, Amount: 1}).Validate(); err == nil {
		t.Fatal("missing customer accepted")
	}
}
