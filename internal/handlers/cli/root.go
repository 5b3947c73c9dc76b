package cli

import (
	"errors"
	"fmt"

	"github.com/bmark-cli/bmark/internal/config"
	"github.com/bmark-cli/bmark/internal/core/ports"
	"github.com/bmark-cli/bmark/internal/logging"
	"github.com/spf13/cobra"
)

// ErrUsage is returned after usage text has been printed; the caller only needs to exit non-zero.
var ErrUsage = errors.New("invalid usage")

// lenientConfigAnnotation marks commands that must run even when the config file
// cannot be loaded. They fall back to the defaults instead.
const lenientConfigAnnotation = "bmark/lenient-config"

// ServiceFactory builds the bookmark service once the configuration is known.
type ServiceFactory func(cfg *config.Config) (ports.BookmarkService, error)

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgPath    string
	verbosity  int
	env        config.Env
	cfg        *config.Config
	svc        ports.BookmarkService
	newService ServiceFactory
}

func NewRootCommand(version string, env config.Env, newService ServiceFactory) *cobra.Command {
	a := &app{env: env, newService: newService}

	rootCmd := &cobra.Command{
		Use:   "bmark <command>",
		Short: "bmark bookmarks directories and turns them into shell aliases.",
		Long: `bmark records directories under short names. Every bookmark becomes a
shell alias (_name by default) in a generated file you source from your shell.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown command %q\n\n", args[0])
			}
			_ = cmd.Usage()
			return ErrUsage
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity, cmd.ErrOrStderr())
			if !cmd.HasParent() {
				return nil
			}
			_, lenient := cmd.Annotations[lenientConfigAnnotation]
			return a.setup(lenient)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(
		NewAddCommand(a),
		NewListCommand(a),
		NewEditCommand(a),
		NewOpenCommand(a),
		NewRmCommand(a),
		NewUpdateCommand(a),
		NewImportCommand(a),
		NewConfigCommand(a),
	)

	return rootCmd
}

func (a *app) setup(lenient bool) error {
	log := logging.GetLogger("cli")
	cfg, err := config.Load(a.cfgPath, a.env)
	if err != nil {
		if !lenient {
			return err
		}
		log.Warn().Err(err).Msg("Using default settings")
		cfg = config.Default(a.env)
	}
	a.cfg = cfg
	log.Debug().Str("config", a.cfgPath).Str("store", cfg.StorePath).Msg("Configuration loaded")

	svc, err := a.newService(cfg)
	if err != nil {
		return fmt.Errorf("could not initialize bookmark service: %w", err)
	}
	a.svc = svc
	return nil
}

// usageArgs prints usage and fails when the argument count is outside [minArgs, maxArgs].
func usageArgs(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < minArgs || len(args) > maxArgs {
			_ = cmd.Usage()
			return ErrUsage
		}
		return nil
	}
}
