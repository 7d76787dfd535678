package storage

import (
	"fmt"
	"strconv"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/models"
)

// The password column holds the bcrypt hash, never the plaintext. The column
// name is kept from the original data layout.
var accountFields = []string{"id", "email", "password"}

// CSVAccountRepository stores accounts in one flat file and owns credential
// hashing and verification.
type CSVAccountRepository struct {
	file *CSVFile
}

// NewCSVAccountRepository creates an account repository backed by path.
func NewCSVAccountRepository(path string) *CSVAccountRepository {
	return &CSVAccountRepository{file: NewCSVFile(path, accountFields)}
}

// Register creates a new account. The email must not already be registered
// (case-sensitive exact match over the full store); the password is stored
// as a bcrypt hash.
func (r *CSVAccountRepository) Register(email, password string) (*models.Account, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec["email"] == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := models.Account{ID: nextID(records), Email: email, PasswordHash: hash}
	if err := r.file.Append(Record{
		"id":       strconv.FormatInt(a.ID, 10),
		"email":    a.Email,
		"password": a.PasswordHash,
	}); err != nil {
		return nil, err
	}
	return &a, nil
}

// Authenticate verifies email and password against the store. Unknown emails
// and wrong passwords both yield ErrInvalidCredentials.
func (r *CSVAccountRepository) Authenticate(email, password string) (*models.Account, error) {
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

// FindByEmail returns the account with the given email, or ErrNotFound.
func (r *CSVAccountRepository) FindByEmail(email string) (*models.Account, error) {
	records, err := r.file.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec["email"] == email {
			id, _ := strconv.ParseInt(rec["id"], 10, 64)
			return &models.Account{ID: id, Email: email, PasswordHash: rec["password"]}, nil
		}
	}
	return nil, ErrNotFound
}
