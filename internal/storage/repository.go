package storage

import (
	"fmt"
	"path/filepath"

	"finance-tracker/internal/models"
)

// CategoryRepository exposes typed operations over the category store.
type CategoryRepository interface {
	List() ([]models.Category, error)
	Get(id int64) (*models.Category, error)
	Add(name string) (*models.Category, error)
	Update(id int64, name string) error
	Delete(id int64) error
}

// TransactionRepository exposes typed operations over the transaction store.
type TransactionRepository interface {
	List() ([]models.Transaction, error)
	Add(description, amount string, categoryID int64) (*models.Transaction, error)
	Delete(id int64) error
}

// AccountRepository owns account records and credential verification.
type AccountRepository interface {
	Register(email, password string) (*models.Account, error)
	Authenticate(email, password string) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
}

// Stores bundles the three repositories behind one handle so callers can be
// wired against either backend.
type Stores struct {
	Categories   CategoryRepository
	Transactions TransactionRepository
	Accounts     AccountRepository

	closer func() error
}

// Close releases backend resources. A no-op for the CSV backend.
func (s *Stores) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

// Backend names accepted by Open.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Open builds the repository set for the configured backend. The CSV backend
// keeps one flat file per entity under dataDir; the sqlite backend stores
// everything in the database at sqlitePath.
func Open(backend, dataDir, sqlitePath string) (*Stores, error) {
	switch backend {
	case BackendCSV, "":
		return &Stores{
			Categories:   NewCSVCategoryRepository(filepath.Join(dataDir, "categories.csv")),
			Transactions: NewCSVTransactionRepository(filepath.Join(dataDir, "transactions.csv")),
			Accounts:     NewCSVAccountRepository(filepath.Join(dataDir, "users.csv")),
		}, nil
	case BackendSQLite:
		db, err := NewSQLiteDB(sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return &Stores{
			Categories:   &SQLiteCategoryRepository{db: db},
			Transactions: &SQLiteTransactionRepository{db: db},
			Accounts:     &SQLiteAccountRepository{db: db},
			closer:       db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
