package storage

import (
	"strconv"

	"finance-tracker/internal/models"
)

// Header names match the original data files, which were written in
// Portuguese. New files keep the same layout so existing data stays readable.
var transactionFields = []string{"id", "descricao", "valor", "categoria"}

// CSVTransactionRepository stores transactions in one flat file.
type CSVTransactionRepository struct {
	file *CSVFile
}

// NewCSVTransactionRepository creates a transaction repository backed by path.
func NewCSVTransactionRepository(path string) *CSVTransactionRepository {
	return &CSVTransactionRepository{file: NewCSVFile(path, transactionFields)}
}

// List returns all transactions in file order.
func (r *CSVTransactionRepository) List() ([]models.Transaction, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	transactions := make([]models.Transaction, 0, len(records))
	for _, rec := range records {
		id, _ := strconv.ParseInt(rec["id"], 10, 64)
		categoryID, _ := strconv.ParseInt(rec["categoria"], 10, 64)
		transactions = append(transactions, models.Transaction{
			ID:          id,
			Description: rec["descricao"],
			Amount:      rec["valor"],
			CategoryID:  categoryID,
		})
	}
	return transactions, nil
}

// Add appends a new transaction. The category reference is not checked: a
// dangling id is stored as-is and resolved at render time.
func (r *CSVTransactionRepository) Add(description, amount string, categoryID int64) (*models.Transaction, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	t := models.Transaction{
		ID:          nextID(records),
		Description: description,
		Amount:      amount,
		CategoryID:  categoryID,
	}
	if err := r.file.Append(Record{
		"id":        strconv.FormatInt(t.ID, 10),
		"descricao": t.Description,
		"valor":     t.Amount,
		"categoria": strconv.FormatInt(t.CategoryID, 10),
	}); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the transaction with the given id, or returns ErrNotFound.
func (r *CSVTransactionRepository) Delete(id int64) error {
	return r.file.Delete(strconv.FormatInt(id, 10))
}
