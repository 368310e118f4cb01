package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simplebank-dev/simplebank/internal/model"
)

// Sentinels matched by the concrete error types via errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ValidationError describes rejected input: an empty name, an unparsable
// amount, or an amount out of range.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports a match against ErrValidation.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when no account matches an account number.
type NotFoundError struct {
	AccountID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.AccountID)
}

// Is reports a match against ErrNotFound.
func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientFundsError is returned when a withdrawal exceeds the balance.
type InsufficientFundsError struct {
	AccountID string
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in %s: balance %s%s, requested %s%s",
		e.AccountID,
		model.CurrencySymbol, e.Balance.StringFixed(2),
		model.CurrencySymbol, e.Requested.StringFixed(2))
}

// Is reports a match against ErrInsufficientFunds.
func (e InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
