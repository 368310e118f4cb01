package ledger

import (
	"strings"
	"sync"

	"github.com/simplebank-dev/simplebank/internal/id"
	"github.com/simplebank-dev/simplebank/internal/model"
)

// Options controls how account numbers are assigned.
type Options struct {
	IDPrefix string // e.g. "ACC"
	IDBase   int    // sequence of the first account
	IDWidth  int    // zero-pad width of the sequence
}

// DefaultOptions returns the numbering used by default: ACC1000, ACC1001, ...
func DefaultOptions() Options {
	return Options{
		IDPrefix: "ACC",
		IDBase:   1000,
		IDWidth:  4,
	}
}

// Ledger owns all accounts and the account number counter.
// A single mutex serializes every check-then-mutate step.
type Ledger struct {
	mu       sync.Mutex
	opts     Options
	nextSeq  int
	accounts []*model.Account
}

// New creates an empty Ledger.
func New(opts Options) *Ledger {
	return &Ledger{opts: opts, nextSeq: opts.IDBase}
}

// CreateAccount opens an account for holderName with an opening balance of
// initialDeposit, which may be zero but not negative.
func (l *Ledger) CreateAccount(holderName, initialDeposit string) (model.Account, error) {
	name := strings.TrimSpace(holderName)
	if name == "" {
		return model.Account{}, ValidationError{Field: "holder name", Value: holderName, Reason: "must not be empty"}
	}

	amount, err := ParseAmount("initial deposit", initialDeposit)
	if err != nil {
		return model.Account{}, err
	}
	if amount.IsNegative() {
		return model.Account{}, ValidationError{Field: "initial deposit", Value: strings.TrimSpace(initialDeposit), Reason: "cannot be negative"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.nextSeq
	l.nextSeq++

	acct := &model.Account{
		Number:     id.FormatAccountNumber(l.opts.IDPrefix, l.opts.IDWidth, seq),
		Seq:        seq,
		HolderName: name,
		Balance:    amount,
	}
	l.accounts = append(l.accounts, acct)
	return *acct, nil
}

// Deposit adds a positive amount to an account's balance.
func (l *Ledger) Deposit(accountID, amount string) (model.Account, error) {
	d, err := parsePositive("deposit amount", amount)
	if err != nil {
		return model.Account{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct := l.find(accountID)
	if acct == nil {
		return model.Account{}, NotFoundError{AccountID: strings.TrimSpace(accountID)}
	}
	acct.Balance = acct.Balance.Add(d)
	return *acct, nil
}

// Withdraw removes a positive amount from an account's balance. The
// balance never goes negative.
func (l *Ledger) Withdraw(accountID, amount string) (model.Account, error) {
	d, err := parsePositive("withdrawal amount", amount)
	if err != nil {
		return model.Account{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acct := l.find(accountID)
	if acct == nil {
		return model.Account{}, NotFoundError{AccountID: strings.TrimSpace(accountID)}
	}
	if d.GreaterThan(acct.Balance) {
		return model.Account{}, InsufficientFundsError{
			AccountID: acct.Number,
			Balance:   acct.Balance,
			Requested: d,
		}
	}
	acct.Balance = acct.Balance.Sub(d)
	return *acct, nil
}

// FindAccount looks up an account by number, ignoring case.
func (l *Ledger) FindAccount(accountID string) (model.Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct := l.find(accountID)
	if acct == nil {
		return model.Account{}, false
	}
	return *acct, true
}

// Balance is FindAccount with a NotFoundError for unknown accounts.
func (l *Ledger) Balance(accountID string) (model.Account, error) {
	acct, ok := l.FindAccount(accountID)
	if !ok {
		return model.Account{}, NotFoundError{AccountID: strings.TrimSpace(accountID)}
	}
	return acct, nil
}

// ListAccounts returns all accounts in creation order.
func (l *Ledger) ListAccounts() []model.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}
	return out
}

// find must be called with mu held. Linear scan; ledgers are small.
func (l *Ledger) find(accountID string) *model.Account {
	for _, a := range l.accounts {
		if id.SameAccountNumber(a.Number, accountID) {
			return a
		}
	}
	return nil
}
