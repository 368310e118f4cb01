package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes rendered balances.
const CurrencySymbol = "$"

// Account is a named balance record held by the ledger.
type Account struct {
	Number     string // display id, e.g. "ACC1000"
	Seq        int    // numeric part of Number
	HolderName string
	Balance    decimal.Decimal // never negative, two decimal places
}

// FormattedBalance renders the balance as "$150.00".
func (a Account) FormattedBalance() string {
	return CurrencySymbol + a.Balance.StringFixed(2)
}

// String renders the account as a listing line:
// "Acc No: ACC1000, Name: Alice, Balance: $100.00".
func (a Account) String() string {
	return fmt.Sprintf("Acc No: %s, Name: %s, Balance: %s", a.Number, a.HolderName, a.FormattedBalance())
}
