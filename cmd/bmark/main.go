package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmark-cli/bmark/internal/adapters/oscommand"
	"github.com/bmark-cli/bmark/internal/config"
	"github.com/bmark-cli/bmark/internal/handlers/cli"
	"github.com/bmark-cli/bmark/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	runner := oscommand.NewOSProcessRunner()
	rootCmd := cli.NewRootCommand(Version, config.CurrentEnv(), cli.NewServiceFactory(runner, os.Getwd))
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		// Usage errors have already printed the usage text.
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}
