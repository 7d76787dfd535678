package storage

import (
	"database/sql"
	"fmt"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteDB wraps a sql.DB connection for the sqlite backend.
type SQLiteDB struct {
	conn *sql.DB
}

// NewSQLiteDB opens a database connection and runs migrations.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &SQLiteDB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *SQLiteDB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			amount TEXT NOT NULL,
			category_id INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (db *SQLiteDB) Close() error {
	return db.conn.Close()
}

// SQLiteCategoryRepository implements CategoryRepository over sqlite.
type SQLiteCategoryRepository struct {
	db *SQLiteDB
}

// List retrieves all categories ordered by id.
func (r *SQLiteCategoryRepository) List() ([]models.Category, error) {
	rows, err := r.db.conn.Query("SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Get retrieves a single category by id.
func (r *SQLiteCategoryRepository) Get(id int64) (*models.Category, error) {
	row := r.db.conn.QueryRow("SELECT id, name FROM categories WHERE id = ?", id)

	var c models.Category
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Add inserts a new category.
func (r *SQLiteCategoryRepository) Add(name string) (*models.Category, error) {
	result, err := r.db.conn.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: name}, nil
}

// Update renames an existing category.
func (r *SQLiteCategoryRepository) Update(id int64, name string) error {
	result, err := r.db.conn.Exec("UPDATE categories SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Delete removes a category. Transactions referencing it are left alone.
func (r *SQLiteCategoryRepository) Delete(id int64) error {
	result, err := r.db.conn.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// SQLiteTransactionRepository implements TransactionRepository over sqlite.
type SQLiteTransactionRepository struct {
	db *SQLiteDB
}

// List retrieves all transactions ordered by id.
func (r *SQLiteTransactionRepository) List() ([]models.Transaction, error) {
	rows, err := r.db.conn.Query("SELECT id, description, amount, category_id FROM transactions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.CategoryID); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Add inserts a new transaction. The category reference is not validated.
func (r *SQLiteTransactionRepository) Add(description, amount string, categoryID int64) (*models.Transaction, error) {
	result, err := r.db.conn.Exec(
		"INSERT INTO transactions (description, amount, category_id) VALUES (?, ?, ?)",
		description, amount, categoryID,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Transaction{ID: id, Description: description, Amount: amount, CategoryID: categoryID}, nil
}

// Delete removes a transaction by id.
func (r *SQLiteTransactionRepository) Delete(id int64) error {
	result, err := r.db.conn.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// SQLiteAccountRepository implements AccountRepository over sqlite.
type SQLiteAccountRepository struct {
	db *SQLiteDB
}

// Register creates a new account, rejecting duplicate emails.
func (r *SQLiteAccountRepository) Register(email, password string) (*models.Account, error) {
	if _, err := r.FindByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if err != ErrNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	result, err := r.db.conn.Exec(
		"INSERT INTO accounts (email, password_hash) VALUES (?, ?)",
		email, hash,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Account{ID: id, Email: email, PasswordHash: hash}, nil
}

// Authenticate verifies email and password against the store.
func (r *SQLiteAccountRepository) Authenticate(email, password string) (*models.Account, error) {
	account, err := r.FindByEmail(email)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// FindByEmail retrieves an account by email.
func (r *SQLiteAccountRepository) FindByEmail(email string) (*models.Account, error) {
	row := r.db.conn.QueryRow(
		"SELECT id, email, password_hash FROM accounts WHERE email = ?",
		email,
	)

	var a models.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
