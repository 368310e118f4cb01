package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simplebank-dev/simplebank/internal/ledger"
	"github.com/simplebank-dev/simplebank/internal/shell"
)

const defaultPrompt = "simplebank> "

func newShellCommand(flags *globalFlags) *cobra.Command {
	var scriptPath string
	var prompt string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive banking session",
		Long: `Start an interactive banking session over stdin.

Accounts live only for the duration of the session. Commands:
  create <holder name> <initial deposit>
  deposit <account> <amount>
  withdraw <account> <amount>
  balance <account>
  list [text|csv]
  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			in := cmd.InOrStdin()
			if scriptPath != "" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
				if !cmd.Flags().Changed("prompt") {
					prompt = ""
				}
			}

			return runShell(ledger.New(cfg.LedgerOptions()), in, cmd.OutOrStdout(), logger, prompt)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "read commands from a file instead of stdin")
	cmd.Flags().StringVar(&prompt, "prompt", defaultPrompt, "prompt shown before each command (empty to disable)")

	return cmd
}

func runShell(l *ledger.Ledger, in io.Reader, out io.Writer, logger *slog.Logger, prompt string) error {
	logger.Info("session started")

	s := shell.NewSession(l, out, logger)
	s.Prompt = prompt
	if err := s.Run(in); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	logger.Info("session ended", slog.Int("accounts", len(l.ListAccounts())))
	return nil
}
