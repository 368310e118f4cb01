package report

import (
	"fmt"
	"io"

	"github.com/simplebank-dev/simplebank/internal/model"
)

const (
	// EmptyMessage is written instead of a listing when there are no accounts.
	EmptyMessage = "No accounts to display yet."
	listHeader   = "--- All Accounts ---"
	listFooter   = "--------------------"
)

// Format selects a listing format.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown list format %q (want text or csv)", s)
	}
}

// Write renders accounts in the given format.
func Write(w io.Writer, format Format, accounts []model.Account) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, accounts)
	default:
		return WriteText(w, accounts)
	}
}

// WriteText writes one listing line per account in the order given.
func WriteText(w io.Writer, accounts []model.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	if _, err := fmt.Fprintln(w, listHeader); err != nil {
		return err
	}
	for _, acct := range accounts {
		if _, err := fmt.Fprintln(w, acct.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, listFooter)
	return err
}
