package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"finance-tracker/internal/models"
)

// UncategorizedLabel is shown for transactions whose category was deleted.
const UncategorizedLabel = "Uncategorized"

// TransactionItem is a transaction joined with its category name for display.
type TransactionItem struct {
	models.Transaction
	CategoryName string
}

// TransactionsViewModel holds data for the transaction list page.
type TransactionsViewModel struct {
	BasePage
	Transactions []TransactionItem
	Categories   []models.Category
}

// ListTransactions renders the transaction list joined with category names.
// The join happens here, not in the storage layer: a dangling category
// reference renders as UncategorizedLabel.
func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.stores.Transactions.List()
	if err != nil {
		h.fail(w, r, err, "/transacoes")
		return
	}
	categories, err := h.stores.Categories.List()
	if err != nil {
		h.fail(w, r, err, "/transacoes")
		return
	}

	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	items := make([]TransactionItem, 0, len(transactions))
	for _, t := range transactions {
		name, ok := names[t.CategoryID]
		if !ok {
			name = UncategorizedLabel
		}
		items = append(items, TransactionItem{Transaction: t, CategoryName: name})
	}

	h.render(w, "transactions.html", TransactionsViewModel{
		BasePage:     h.newBasePage(w, r),
		Transactions: items,
		Categories:   categories,
	})
}

// CreateTransaction adds a transaction from the form fields descricao,
// valor and categoria. The category id is stored as given; whether it still
// exists is not checked.
func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/transacoes", "danger", "Invalid form submission.")
		return
	}

	form := transactionForm{
		Description: strings.TrimSpace(r.FormValue("descricao")),
		Amount:      strings.TrimSpace(r.FormValue("valor")),
		CategoryID:  strings.TrimSpace(r.FormValue("categoria")),
	}
	if err := h.validateForm(form); err != nil {
		h.redirectWithFlash(w, r, "/transacoes", "danger", err.Error())
		return
	}
	categoryID, _ := strconv.ParseInt(form.CategoryID, 10, 64)

	if _, err := h.stores.Transactions.Add(form.Description, form.Amount, categoryID); err != nil {
		h.fail(w, r, err, "/transacoes")
		return
	}
	h.redirectWithFlash(w, r, "/transacoes", "success", "Transaction added successfully!")
}

// DeleteTransaction removes a transaction by id.
func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/transacoes", "danger", "Transaction not found.")
		return
	}

	if err := h.stores.Transactions.Delete(id); err != nil {
		h.fail(w, r, err, "/transacoes")
		return
	}
	h.redirectWithFlash(w, r, "/transacoes", "success", "Transaction deleted successfully!")
}
