package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

// editString applies a single key press to a text buffer.
func editString(s string, m tea.KeyMsg) string {
	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(s) > 0 {
			s = s[:len(s)-1]
		}
	case tea.KeySpace:
		s += " "
	case tea.KeyRunes:
		s += string(m.Runes)
	}
	return s
}

// customerForm backs the create/edit customer modal. A non-empty
// editingID means the submit updates instead of creating.
type customerForm struct {
	editingID string
	fields    [4]string // first name, last name, document, phone
	cursor    int
}

var customerFieldLabels = [4]string{"First name *", "Last name *", "Document *", "Phone"}

func (f *customerForm) reset() {
	*f = customerForm{}
}

func (f *customerForm) load(c ledger.Customer) {
	f.editingID = c.ID
	f.fields = [4]string{c.FirstName, c.LastName, c.DocumentID, c.Phone}
	f.cursor = 0
}

func (f *customerForm) next() {
	f.cursor = (f.cursor + 1) % len(f.fields)
}

func (f *customerForm) prev() {
	f.cursor = (f.cursor + len(f.fields) - 1) % len(f.fields)
}

func (f *customerForm) edit(m tea.KeyMsg) {
	f.fields[f.cursor] = editString(f.fields[f.cursor], m)
}

func (f customerForm) toNew() ledger.NewCustomer {
	return ledger.NewCustomer{
		FirstName:  strings.TrimSpace(f.fields[0]),
		LastName:   strings.TrimSpace(f.fields[1]),
		DocumentID: strings.TrimSpace(f.fields[2]),
		Phone:      strings.TrimSpace(f.fields[3]),
	}
}

// transactionForm backs the new-transaction modal.
type transactionForm struct {
	kind   ledger.Kind
	amount string
	note   string
	cursor int // 0 kind, 1 amount, 2 note
}

const txFormFields = 3

func (f *transactionForm) reset() {
	*f = transactionForm{kind: ledger.KindPurchase}
}

func (f *transactionForm) next() {
	f.cursor = (f.cursor + 1) % txFormFields
}

func (f *transactionForm) prev() {
	f.cursor = (f.cursor + txFormFields - 1) % txFormFields
}

func (f *transactionForm) toggleKind() {
	if f.kind == ledger.KindPurchase {
		f.kind = ledger.KindPayment
	} else {
		f.kind = ledger.KindPurchase
	}
}

func (f *transactionForm) edit(m tea.KeyMsg) {
	switch f.cursor {
	case 0:
		switch m.String() {
		case "left", "right", " ":
			f.toggleKind()
		}
	case 1:
		f.amount = editString(f.amount, m)
	case 2:
		f.note = editString(f.note, m)
	}
}

// parse validates the form and returns the fields ready for a store
// write. The amount must be a parseable non-negative number.
func (f transactionForm) parse() (ledger.Kind, float64, string, error) {
	raw := strings.TrimSpace(f.amount)
	if raw == "" {
		return "", 0, "", fmt.Errorf("%w: amount is required", ledger.ErrInvalidArgument)
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: amount must be a number", ledger.ErrInvalidArgument)
	}
	if amount < 0 {
		return "", 0, "", fmt.Errorf("%w: amount must be non-negative", ledger.ErrInvalidArgument)
	}
	return f.kind, amount, strings.TrimSpace(f.note), nil
}
