package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form structs mirror the HTML forms; field names for transactions follow
// the original page layout (descricao, valor, categoria).

type registerForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type categoryForm struct {
	Name string `validate:"required,max=50"`
}

type transactionForm struct {
	Description string `validate:"required"`
	Amount      string `validate:"required,numeric"`
	CategoryID  string `validate:"required,number"`
}

// validateForm runs struct validation and converts the first failure into a
// message fit for a flash.
func (h *Handlers) validateForm(form any) error {
	err := h.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%s", fieldMessage(verrs[0]))
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "numeric", "number":
		return field + " must be a number"
	default:
		return field + " is invalid"
	}
}
