package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/simplebank-dev/simplebank/internal/model"
)

const (
	numFields  = 3
	colNumber  = 0
	colHolder  = 1
	colBalance = 2
)

// Header is the CSV header row written by WriteCSV.
var Header = []string{"account_number", "holder_name", "balance"}

// WriteCSV writes accounts as CSV, one row per account, balances fixed to
// two decimal places.
func WriteCSV(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = acct.Number
	row[colHolder] = acct.HolderName
	row[colBalance] = acct.Balance.StringFixed(2)
	return row
}
