package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/limadaniel-ar/tienda-cuentas/internal/ledger"
)

// styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	owesStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (a *App) View() string {
	if a.pendingLoads > 0 {
		return "loading accounts..."
	}

	var body string
	switch a.view {
	case viewDetail:
		body = a.renderDetail()
	case viewNotifications:
		body = a.renderNotifications()
	default:
		body = a.renderCustomers()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

func (a *App) header(name string) string {
	title := titleStyle.Render("Cuentas - " + name)
	if n := len(a.currentNotifications()); n > 0 {
		title += "  " + badgeStyle.Render(fmt.Sprintf("%d overdue", n))
	}
	return title
}

func (a *App) money(v float64) string {
	return fmt.Sprintf("%s%.2f", a.currency, v)
}

func (a *App) renderCustomers() string {
	out := a.header("Customers") + "\n"

	search := a.searchQuery
	if a.searching {
		search += "█"
	} else if search == "" {
		search = faintStyle.Render("(press / to search)")
	}
	out += "Search: " + search + "\n\n"

	visible := a.visibleCustomers()
	if len(visible) == 0 {
		out += faintStyle.Render("no customers registered") + "\n"
	}
	for i, c := range visible {
		marker := " "
		if i == a.custCursor && !a.searching {
			marker = "▶"
		}
		balance := ledger.Balance(c.ID, a.transactions)
		state := okStyle.Render(a.money(balance) + " up to date")
		if balance > 0 {
			state = owesStyle.Render(a.money(balance) + " owes")
		}
		out += fmt.Sprintf("%s %-28s %s\n", marker, c.FullName(), state)
		out += "  " + faintStyle.Render(fmt.Sprintf("doc %s  tel %s", c.DocumentID, c.Phone)) + "\n"
	}

	out += "\n[enter] Detail  [n] New  [e] Edit  [x] Delete  [g] Notifications  [/] Search  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderDetail() string {
	c := a.selectedCustomer()
	if c == nil {
		return a.header("Detail") + "\n" + faintStyle.Render("customer no longer exists") + "\n[esc] Back"
	}

	out := a.header(c.FullName()) + "\n"
	out += faintStyle.Render(fmt.Sprintf("doc %s  tel %s  since %s", c.DocumentID, c.Phone, c.CreatedAt.Format(a.dateFmt))) + "\n"

	balance := ledger.Balance(c.ID, a.transactions)
	if balance > 0 {
		out += "Balance: " + owesStyle.Render(a.money(balance)) + "\n"
	} else {
		out += "Balance: " + okStyle.Render(a.money(balance)) + "\n"
	}

	out += "\n" + titleStyle.Render("History") + "\n"
	history := ledger.CustomerTransactions(c.ID, a.transactions)
	if len(history) == 0 {
		out += faintStyle.Render("no transactions yet") + "\n"
	}
	for _, t := range history {
		sign := "+"
		if t.Kind == ledger.KindPayment {
			sign = "-"
		}
		line := fmt.Sprintf("%s  %-8s %s%s", t.CreatedAt.Format(a.dateFmt), t.Kind, sign, a.money(t.Amount))
		if t.Note != "" {
			line += "  " + faintStyle.Render(t.Note)
		}
		out += line + "\n"
	}

	out += "\n[t] New transaction  [a] Apply increase  [g] Notifications  [esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderNotifications() string {
	out := a.header("Notifications") + "\n\n"

	notifs := a.currentNotifications()
	if len(notifs) == 0 {
		out += faintStyle.Render("no pending notifications") + "\n"
	}
	for i, n := range notifs {
		marker := " "
		if i == a.notifCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %s - %s\n", marker, n.CustomerName, n.Message)
		out += "  pending balance: " + owesStyle.Render(a.money(n.PendingBalance)) + "\n"
	}

	out += "\n[enter] View details  [esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalCustomerForm:
		title := "New customer"
		if a.custForm.editingID != "" {
			title = "Edit customer"
		}
		var b strings.Builder
		b.WriteString(titleStyle.Render(title) + "\n")
		for i, label := range customerFieldLabels {
			marker := " "
			if i == a.custForm.cursor {
				marker = "▶"
			}
			b.WriteString(fmt.Sprintf("%s %-13s %s\n", marker, label, a.custForm.fields[i]))
		}
		b.WriteString("[enter] Save  [tab] Next field  [esc] Cancel")
		return modalStyle.Render(b.String())

	case modalTransactionForm:
		var b strings.Builder
		b.WriteString(titleStyle.Render("New transaction") + "\n")
		rows := []string{
			fmt.Sprintf("%-8s %s", "Kind", a.txForm.kind),
			fmt.Sprintf("%-8s %s", "Amount *", a.txForm.amount),
			fmt.Sprintf("%-8s %s", "Note", a.txForm.note),
		}
		for i, row := range rows {
			marker := " "
			if i == a.txForm.cursor {
				marker = "▶"
			}
			b.WriteString(marker + " " + row + "\n")
		}
		b.WriteString("[enter] Save  [space] Toggle kind  [tab] Next field  [esc] Cancel")
		return modalStyle.Render(b.String())

	case modalConfirmDelete:
		name := a.deletingID
		if c := a.customerByID(a.deletingID); c != nil {
			name = c.FullName()
		}
		return modalStyle.Render(titleStyle.Render("Delete customer?") +
			fmt.Sprintf("\n%s\nIts transactions are kept in the ledger.\n[y] Yes  [n] No", name))

	case modalIncrease:
		return modalStyle.Render(titleStyle.Render("Apply increase (%)") +
			fmt.Sprintf("\n%s█\n[enter] Apply  [esc] Cancel", a.inputBuffer))

	default:
		return ""
	}
}
