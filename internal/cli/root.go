// Package cli implements the contacts command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	output    string
	verbose   bool
	plain     bool
}

// app is the state shared by the commands of one root command instance.
type app struct {
	flags     rootFlags
	configDir string
	settings  settings
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered. Run without a subcommand it starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "An interactive contact manager",
		Long: `contacts keeps names, phone numbers, and birthdays for the length of a
session. Start it and type commands such as "add Ann 0501234567",
"birthdays", or "help". Nothing is saved when the session ends.`,
		Version: contacts.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/contacts)")
	pf.StringVar(&a.flags.backend, "backend", "", "storage backend: memory or sqlite (default: memory)")
	pf.StringVar(&a.flags.output, "output", "", "output format: console, json, or yaml (default: console)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.BoolVar(&a.flags.plain, "plain", false, "disable colors in console output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))

	return root
}

// setup resolves the config directory, loads settings, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	s, err := loadSettings(dir, cmd.Root().PersistentFlags())
	if err != nil {
		return userError(err)
	}
	a.settings = s

	logger, err := newLogger(s.LogLevel, a.flags.verbose)
	if err != nil {
		return userError(err)
	}
	a.logger = logger
	a.logger.Debug("settings loaded",
		zap.String("config_dir", dir),
		zap.String("backend", s.Backend),
		zap.String("output", s.Output))
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "contacts:", err)
		os.Exit(exitCode(err))
	}
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps err to a process exit code. Errors without a code are
// user errors (bad flags, unknown subcommands).
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
