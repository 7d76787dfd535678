package models

import "time"

// Category represents a spending category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Transaction represents a financial transaction. Amount is kept as the
// decimal string the user typed; no arithmetic is performed on it server-side.
// CategoryID is a soft reference: the category it points at may have been
// deleted, and the handlers resolve it at render time.
type Transaction struct {
	ID          int64  `json:"id"`
	Description string `json:"descricao"`
	Amount      string `json:"valor"`
	CategoryID  int64  `json:"categoria"`
}

// Account represents a registered user.
type Account struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Session represents a logged-in browser. Sessions live only in memory and
// map a random token to the account email.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
