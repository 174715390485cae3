package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstnet/internal/config"
	"github.com/katalvlaran/mstnet/internal/logging"
)

// version is stamped with -ldflags "-X main.version=...".
var version = "dev"

// app holds state shared by all subcommands for one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "mstnet",
		Short:         "Minimum spanning trees for transport network graphs",
		Long:          "mstnet builds minimum spanning trees with Prim's and Kruskal's algorithms,\ncross-checks them and reports cost, operations and timing per graph.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Loads config and installs the logger for every subcommand.
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json (overrides config)")

	root.AddCommand(a.generateCmd(), a.runCmd(), a.configCmd(), a.versionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	log, closer, err := logging.New(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closer = cfg, log, closer
	cmd.SetContext(logging.WithLogger(cmd.Context(), log))

	return nil
}

// logger returns the configured logger, or slog.Default before setup ran.
func (a *app) logger() *slog.Logger {
	if a.log == nil {
		return slog.Default()
	}

	return a.log
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mstnet version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "mstnet", version)
		},
	}
}
