// Package tui implements the terminal interface: an explicit state
// struct advanced by a single Update function. Store I/O runs in
// commands whose results come back as messages; in-memory collections
// are only replaced after a successful reload.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/limadaniel-ar/tienda-cuentas/internal/config"
	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
	"github.com/limadaniel-ar/tienda-cuentas/internal/service"
)

// CustomerStore is the customer slice of the data-service contract.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]ledger.Customer, error)
	CreateCustomer(ctx context.Context, nc ledger.NewCustomer) (ledger.Customer, error)
	UpdateCustomer(ctx context.Context, id string, nc ledger.NewCustomer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// TransactionStore is the transaction slice of the data-service contract.
type TransactionStore interface {
	ListTransactions(ctx context.Context) ([]ledger.Transaction, error)
	CreateTransaction(ctx context.Context, t ledger.Transaction) error
}

type Stores struct {
	Customers    CustomerStore
	Transactions TransactionStore
}

type Services struct {
	Increase *service.IncreaseService
}

type viewState string

const (
	viewCustomers     viewState = "customers"
	viewDetail        viewState = "detail"
	viewNotifications viewState = "notifications"
)

type modalState string

const (
	modalNone            modalState = ""
	modalCustomerForm    modalState = "customerForm"
	modalTransactionForm modalState = "transactionForm"
	modalConfirmDelete   modalState = "confirmDelete"
	modalIncrease        modalState = "increase"
)

// App ties together views.
type App struct {
	ctx      context.Context
	log      *slog.Logger
	stores   Stores
	services Services

	view  viewState
	modal modalState

	customers    []ledger.Customer
	transactions []ledger.Transaction
	pendingLoads int

	searchQuery string
	searching   bool
	custCursor  int
	notifCursor int
	selectedID  string
	deletingID  string

	custForm    customerForm
	txForm      transactionForm
	inputBuffer string // increase percentage

	status   string
	currency string
	dateFmt  string
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger, stores Stores, services Services) *App {
	a := &App{
		ctx:          ctx,
		log:          log,
		stores:       stores,
		services:     services,
		view:         viewCustomers,
		pendingLoads: 2,
		currency:     cfg.UI.CurrencySymbol,
		dateFmt:      cfg.UI.DateFormat,
	}
	a.txForm.reset()
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCustomers(), a.loadTransactions())
}

// messages
type customersMsg []ledger.Customer

type transactionsMsg []ledger.Transaction

type customerSavedMsg struct{ created bool }

type customerDeletedMsg struct{}

type transactionSavedMsg struct{}

type increaseAppliedMsg struct {
	amount     float64
	percentage float64
}

type errMsg struct{ error }

// commands
func (a *App) loadCustomers() tea.Cmd {
	return func() tea.Msg {
		list, err := a.stores.Customers.ListCustomers(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return customersMsg(list)
	}
}

func (a *App) loadTransactions() tea.Cmd {
	return func() tea.Msg {
		list, err := a.stores.Transactions.ListTransactions(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return transactionsMsg(list)
	}
}

func (a *App) saveCustomerCmd(editingID string, nc ledger.NewCustomer) tea.Cmd {
	return func() tea.Msg {
		if editingID == "" {
			if _, err := a.stores.Customers.CreateCustomer(a.ctx, nc); err != nil {
				return errMsg{err}
			}
			return customerSavedMsg{created: true}
		}
		if err := a.stores.Customers.UpdateCustomer(a.ctx, editingID, nc); err != nil {
			return errMsg{err}
		}
		return customerSavedMsg{}
	}
}

func (a *App) deleteCustomerCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.stores.Customers.DeleteCustomer(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return customerDeletedMsg{}
	}
}

func (a *App) saveTransactionCmd(customerID string, kind ledger.Kind, amount float64, note string) tea.Cmd {
	return func() tea.Msg {
		t := ledger.Transaction{
			ID:         uuid.NewString(),
			CustomerID: customerID,
			Kind:       kind,
			Amount:     amount,
			Note:       note,
		}
		if err := a.stores.Transactions.CreateTransaction(a.ctx, t); err != nil {
			return errMsg{err}
		}
		return transactionSavedMsg{}
	}
}

func (a *App) applyIncreaseCmd(customerID string, pct float64) tea.Cmd {
	snapshot := a.transactions
	return func() tea.Msg {
		applied, ok, err := a.services.Increase.Apply(a.ctx, customerID, pct, snapshot)
		if err != nil {
			return errMsg{err}
		}
		if !ok {
			return nil
		}
		return increaseAppliedMsg{amount: applied.Amount, percentage: pct}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.view {
		case viewDetail:
			return a.handleDetailKey(m)
		case viewNotifications:
			return a.handleNotificationsKey(m)
		default:
			return a.handleCustomersKey(m)
		}

	case customersMsg:
		a.customers = []ledger.Customer(m)
		if a.custCursor >= len(a.customers) {
			a.custCursor = 0
		}
		if a.pendingLoads > 0 {
			a.pendingLoads--
		}
	case transactionsMsg:
		a.transactions = []ledger.Transaction(m)
		if a.pendingLoads > 0 {
			a.pendingLoads--
		}

	case customerSavedMsg:
		a.modal = modalNone
		a.custForm.reset()
		if m.created {
			a.status = "customer created"
		} else {
			a.status = "customer updated"
		}
		return a, a.loadCustomers()
	case customerDeletedMsg:
		a.deletingID = ""
		a.status = "customer deleted"
		return a, tea.Batch(a.loadCustomers(), a.loadTransactions())
	case transactionSavedMsg:
		a.modal = modalNone
		a.txForm.reset()
		a.status = "transaction saved"
		return a, a.loadTransactions()
	case increaseAppliedMsg:
		a.modal = modalNone
		a.inputBuffer = ""
		a.status = fmt.Sprintf("applied a %g%% increase (%s%.2f)", m.percentage, a.currency, m.amount)
		return a, a.loadTransactions()

	case errMsg:
		a.log.Error("store operation failed", "err", m.Error())
		a.status = "error: " + m.Error()
		if a.pendingLoads > 0 {
			a.pendingLoads--
		}
	}
	return a, nil
}

func (a *App) handleCustomersKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch m.Type {
		case tea.KeyEsc, tea.KeyEnter:
			a.searching = false
		default:
			a.searchQuery = editString(a.searchQuery, m)
			a.custCursor = 0
		}
		return a, nil
	}

	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "/":
		a.searching = true
		a.status = ""
	case "g":
		a.view = viewNotifications
		a.notifCursor = 0
		a.status = ""
	case "n":
		a.custForm.reset()
		a.modal = modalCustomerForm
		a.status = ""
	case "e":
		if c := a.cursorCustomer(); c != nil {
			a.custForm.load(*c)
			a.modal = modalCustomerForm
			a.status = ""
		}
	case "x":
		if c := a.cursorCustomer(); c != nil {
			a.deletingID = c.ID
			a.modal = modalConfirmDelete
		}
	case "up", "k":
		if a.custCursor > 0 {
			a.custCursor--
		}
	case "down", "j":
		if a.custCursor < len(a.visibleCustomers())-1 {
			a.custCursor++
		}
	case "enter":
		if c := a.cursorCustomer(); c != nil {
			a.selectedID = c.ID
			a.view = viewDetail
			a.status = ""
		}
	}
	return a, nil
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "b":
		a.view = viewCustomers
		a.selectedID = ""
		a.status = ""
	case "g":
		a.view = viewNotifications
		a.notifCursor = 0
		a.status = ""
	case "t":
		a.txForm.reset()
		a.modal = modalTransactionForm
		a.status = ""
	case "a":
		a.inputBuffer = ""
		a.modal = modalIncrease
		a.status = ""
	}
	return a, nil
}

func (a *App) handleNotificationsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	notifs := a.currentNotifications()
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "b":
		a.view = viewCustomers
		a.status = ""
	case "up", "k":
		if a.notifCursor > 0 {
			a.notifCursor--
		}
	case "down", "j":
		if a.notifCursor < len(notifs)-1 {
			a.notifCursor++
		}
	case "enter":
		if a.notifCursor < len(notifs) {
			a.selectedID = notifs[a.notifCursor].CustomerID
			a.view = viewDetail
			a.status = ""
		}
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalCustomerForm:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.custForm.reset()
		case tea.KeyTab, tea.KeyDown:
			a.custForm.next()
		case tea.KeyShiftTab, tea.KeyUp:
			a.custForm.prev()
		case tea.KeyEnter:
			nc := a.custForm.toNew()
			if err := nc.Validate(); err != nil {
				a.status = err.Error()
				return a, nil
			}
			return a, a.saveCustomerCmd(a.custForm.editingID, nc)
		default:
			a.custForm.edit(m)
		}

	case modalTransactionForm:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.txForm.reset()
		case tea.KeyTab, tea.KeyDown:
			a.txForm.next()
		case tea.KeyShiftTab, tea.KeyUp:
			a.txForm.prev()
		case tea.KeyEnter:
			kind, amount, note, err := a.txForm.parse()
			if err != nil {
				a.status = err.Error()
				return a, nil
			}
			return a, a.saveTransactionCmd(a.selectedID, kind, amount, note)
		default:
			a.txForm.edit(m)
		}

	case modalConfirmDelete:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.deleteCustomerCmd(a.deletingID)
		case "n", "N", "esc":
			a.modal = modalNone
			a.deletingID = ""
		}

	case modalIncrease:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyEnter:
			pct, err := strconv.ParseFloat(strings.TrimSpace(a.inputBuffer), 64)
			if err != nil {
				a.status = "percentage must be a number"
				return a, nil
			}
			if pct <= 0 {
				// non-positive percentage is a silent no-op
				a.modal = modalNone
				a.inputBuffer = ""
				return a, nil
			}
			return a, a.applyIncreaseCmd(a.selectedID, pct)
		default:
			a.inputBuffer = editString(a.inputBuffer, m)
		}
	}
	return a, nil
}

// visibleCustomers applies the search filter to the loaded customers.
func (a *App) visibleCustomers() []ledger.Customer {
	return ledger.FilterCustomers(a.customers, a.searchQuery)
}

func (a *App) cursorCustomer() *ledger.Customer {
	visible := a.visibleCustomers()
	if len(visible) == 0 || a.custCursor >= len(visible) {
		return nil
	}
	c := visible[a.custCursor]
	return &c
}

func (a *App) selectedCustomer() *ledger.Customer {
	return a.customerByID(a.selectedID)
}

func (a *App) customerByID(id string) *ledger.Customer {
	for i := range a.customers {
		if a.customers[i].ID == id {
			return &a.customers[i]
		}
	}
	return nil
}

func (a *App) currentNotifications() []ledger.Notification {
	return ledger.Notifications(a.customers, a.transactions, time.Now())
}
