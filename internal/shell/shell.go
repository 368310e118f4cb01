package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/simplebank-dev/simplebank/internal/ledger"
	"github.com/simplebank-dev/simplebank/internal/report"
)

const fillAllFields = "Please fill in all fields."

// Session reads commands line by line and applies them to a ledger.
type Session struct {
	ledger *ledger.Ledger
	out    io.Writer
	logger *slog.Logger

	// Prompt is written before each line is read. Empty disables it.
	Prompt string
}

// NewSession creates a Session writing results to out.
func NewSession(l *ledger.Ledger, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{ledger: l, out: out, logger: logger}
}

// Run executes commands from in until EOF or a quit command.
func (s *Session) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if s.Prompt != "" {
			if _, err := fmt.Fprint(s.out, s.Prompt); err != nil {
				return fmt.Errorf("writing prompt: %w", err)
			}
		}
		if !sc.Scan() {
			break
		}
		quit, err := s.Exec(sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Exec runs a single command line. It reports whether the session should
// end. Ledger failures are written to the output, not returned; the
// returned error is reserved for output failures.
func (s *Session) Exec(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "create":
		err = s.create(args)
	case "deposit":
		err = s.deposit(args)
	case "withdraw":
		err = s.withdraw(args)
	case "balance":
		err = s.balance(args)
	case "list":
		err = s.list(args)
	case "help":
		err = s.help()
	case "quit", "exit":
		return true, nil
	default:
		err = s.println(fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.", fields[0]))
	}
	if err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}
	return false, nil
}

// create <holder name...> <initial deposit>
func (s *Session) create(args []string) error {
	if len(args) < 2 {
		return s.println(fillAllFields)
	}
	name := strings.Join(args[:len(args)-1], " ")
	deposit := args[len(args)-1]

	acct, err := s.ledger.CreateAccount(name, deposit)
	if err != nil {
		return s.fail("create", err)
	}
	s.logger.Debug("account created",
		slog.String("account", acct.Number),
		slog.String("balance", acct.Balance.StringFixed(2)),
	)
	return s.println(
		"Account created successfully! Account Number: "+acct.Number,
		"Account Created: "+acct.String(),
	)
}

func (s *Session) deposit(args []string) error {
	if len(args) < 2 {
		return s.println(fillAllFields)
	}
	if len(args) > 2 {
		return s.println("Usage: deposit <account> <amount>")
	}

	acct, err := s.ledger.Deposit(args[0], args[1])
	if err != nil {
		return s.fail("deposit", err)
	}
	s.logger.Debug("deposit applied",
		slog.String("account", acct.Number),
		slog.String("amount", args[1]),
		slog.String("balance", acct.Balance.StringFixed(2)),
	)
	return s.println(fmt.Sprintf("Deposit successful for %s. New Balance: %s", acct.Number, acct.FormattedBalance()))
}

func (s *Session) withdraw(args []string) error {
	if len(args) < 2 {
		return s.println(fillAllFields)
	}
	if len(args) > 2 {
		return s.println("Usage: withdraw <account> <amount>")
	}

	acct, err := s.ledger.Withdraw(args[0], args[1])
	if err != nil {
		return s.fail("withdraw", err)
	}
	s.logger.Debug("withdrawal applied",
		slog.String("account", acct.Number),
		slog.String("amount", args[1]),
		slog.String("balance", acct.Balance.StringFixed(2)),
	)
	return s.println(fmt.Sprintf("Withdrawal successful for %s. New Balance: %s", acct.Number, acct.FormattedBalance()))
}

func (s *Session) balance(args []string) error {
	if len(args) != 1 {
		return s.println("Please enter an account number.")
	}

	acct, err := s.ledger.Balance(args[0])
	if err != nil {
		return s.fail("balance", err)
	}
	return s.println(
		"Account Number: "+acct.Number,
		"Holder: "+acct.HolderName,
		"Balance: "+acct.FormattedBalance(),
		fmt.Sprintf("Checked Balance for %s: %s", acct.Number, acct.FormattedBalance()),
	)
}

func (s *Session) list(args []string) error {
	var name string
	if len(args) > 0 {
		name = strings.ToLower(args[0])
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return s.println("Error: " + err.Error())
	}
	return report.Write(s.out, format, s.ledger.ListAccounts())
}

func (s *Session) help() error {
	return s.println(
		"Commands:",
		"  create <holder name> <initial deposit>",
		"  deposit <account> <amount>",
		"  withdraw <account> <amount>",
		"  balance <account>",
		"  list [text|csv]",
		"  help",
		"  quit",
	)
}

func (s *Session) fail(op string, err error) error {
	s.logger.Info("operation rejected", slog.String("op", op), slog.Any("error", err))
	return s.println("Error: " + err.Error())
}

func (s *Session) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return err
		}
	}
	return nil
}
