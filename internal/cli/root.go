// Package cli implements the eproc command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/paths"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// defaultLogLevel keeps attach and load messages off the terminal.
const defaultLogLevel = "warn"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
	logJSON   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
}

// NewRootCmd creates the top-level "eproc" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "eproc",
		Short: "Query and browse eProcurement feature data",
		Long: "eproc drives the eProcurement view-state engine from the terminal.\n" +
			"It filters, sorts and pages feature data, resolves application routes\n" +
			"and browses pages the way the web shell does.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/eproc)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/eproc)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: config log_level or warn)")
	pf.BoolVar(&a.flags.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newFeaturesCmd(a),
		newQueryCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newDeleteCmd(a),
		newRoutesCmd(a),
		newRouteCmd(a),
		newHrefCmd(a),
		newBrowseCmd(a),
	)

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. version needs none of it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	a.configDir = dir
	a.cfg = cfg

	level := a.flags.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		level = defaultLogLevel
	}
	log := logger.New(&logger.Config{
		Level:      level,
		JSON:       a.flags.logJSON,
		Output:     cmd.ErrOrStderr(),
		TimeFormat: "15:04:05",
	})
	logger.SetDefault(log)
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))

	log.Debug("config loaded", "config_dir", dir, "backend", cfg.Backend)
	return nil
}

// sysError marks failures of the environment rather than of the input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(err error) error { return &sysError{err: err} }

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
