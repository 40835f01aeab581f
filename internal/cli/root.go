package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tadaboard/internal/board"
	"github.com/Makepad-fr/tadaboard/internal/config"
	"github.com/Makepad-fr/tadaboard/internal/store"
	"github.com/Makepad-fr/tadaboard/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage or validation.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad arguments so Run can map them to exitUsage.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return &usageError{msg: fmt.Sprintf(format, a...)} }

// errHelpShown ends a run that already printed help.
var errHelpShown = errors.New("help shown")

// atLeast and exactly replace cobra's validators so arity mistakes exit 2.
func atLeast(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: tada %s", usage)
		}
		return nil
	}
}

func exactly(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: tada %s", usage)
		}
		return nil
	}
}

// Env is what a command run touches outside the process.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	LoadConfig func(path string) (*config.Config, error)
	OpenStore  func(ctx context.Context, cfg config.StoreConfig) (store.Backend, error)
	Logger     *log.Logger
	IDs        board.IDGenerator
}

// DefaultEnv wires the real terminal, config files and store backends.
func DefaultEnv() Env {
	return Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LoadConfig: func(path string) (*config.Config, error) {
			if path != "" {
				return config.LoadFrom(path)
			}
			return config.Load()
		},
		OpenStore: store.Open,
		Logger:    log.StandardLogger(),
	}
}

// app is the state shared by every subcommand of one run.
type app struct {
	env        Env
	configPath string
	verbose    bool
	strict     bool
	color      string

	cfg   *config.Config
	store store.Backend
	board *board.Board
}

// Run executes args and returns the process exit code.
func Run(args []string) int {
	return RunWith(args, DefaultEnv())
}

// RunWith is Run against an explicit environment.
func RunWith(args []string, env Env) int {
	a := &app{env: env}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(env.Stdin)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	err := root.Execute()
	a.close()
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errHelpShown) {
		return exitUsage
	}
	ui.Fail(env.Stderr, err.Error())
	return exitCode(err)
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	// cobra reports unknown subcommands as plain errors
	case strings.HasPrefix(err.Error(), "unknown command"),
		errors.As(err, &ue),
		errors.Is(err, board.ErrValidation),
		errors.Is(err, board.ErrNotFound):
		return exitUsage
	}
	return exitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tada",
		Short: "tada - a three-column task board",
		Long: `tada keeps your tasks on a board with three columns: on-it, next-up and back-log.

Tasks can hold subtasks, completed tasks go to a bin they can be restored from,
and the whole board is saved after every change.`,
		Example: `  tada add back-log "Buy milk"
  tada ls
  tada mv 3f2a next-up
  tada done 3f2a
  tada restore 3f2a`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errHelpShown
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.tada/config.yaml then ./.tada/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every board operation")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "fail on unknown ids instead of ignoring them")
	root.PersistentFlags().StringVar(&a.color, "color", "auto", "colorize output: auto, always or never")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &usageError{msg: err.Error()} })

	root.AddCommand(
		a.lsCmd(),
		a.addCmd(),
		a.subCmd(),
		a.editCmd(),
		a.doneCmd(),
		a.mvCmd(),
		a.promoteCmd(),
		a.orderCmd(),
		a.deletedCmd(),
		a.restoreCmd(),
		a.clearCmd(),
		a.boardCmd(),
		a.configCmd(),
	)
	return root
}

// loadConfig reads config once and applies logging and theme settings.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := a.env.LoadConfig(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a.setupLogging(cfg)
	ui.SetTheme(cfg.UI.Theme)
	switch a.color {
	case "", "auto":
		if os.Getenv("NO_COLOR") != "" {
			ui.SetColorForcing(false, true)
		}
	case "always":
		ui.SetColorForcing(true, false)
	case "never":
		ui.SetColorForcing(false, true)
	default:
		return nil, usagef("--color must be auto, always or never, not %q", a.color)
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *app) setupLogging(cfg *config.Config) {
	logger := a.env.Logger
	if logger == nil {
		return
	}
	logger.SetOutput(a.env.Stderr)
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	if a.verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	}
}

// openBoard loads config, opens the store and reads the board.
func (a *app) openBoard(ctx context.Context) (*board.Board, error) {
	if a.board != nil {
		return a.board, nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	st, err := a.env.OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	a.store = st

	opts := []board.Option{board.WithKey(cfg.Store.Key), board.WithContext(ctx)}
	if a.env.Logger != nil {
		opts = append(opts, board.WithLogger(a.env.Logger))
	}
	if a.env.IDs != nil {
		opts = append(opts, board.WithIDs(a.env.IDs))
	}
	if cfg.Board.Strict || a.strict {
		opts = append(opts, board.WithStrictLookups())
	}
	b := board.New(st, opts...)
	if err := b.Load(ctx); err != nil {
		return nil, err
	}
	a.board = b
	return b, nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil && a.env.Logger != nil {
		a.env.Logger.WithError(err).Warn("close store")
	}
	a.store = nil
}
