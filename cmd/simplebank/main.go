package main

import (
	"os"

	"github.com/simplebank-dev/simplebank/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
