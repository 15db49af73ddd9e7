// SPDX-License-Identifier: MIT

// Package cmd holds the numopt command tree.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numopt/config"
	"github.com/katalvlaran/numopt/trace"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	traceOn  bool

	cfg config.Config
	log *logrus.Logger
}

// Execute runs the command tree on os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "numopt",
		Short: "Numerical optimization toolkit",
		Long: `numopt runs adaptive-step gradient search, Newton-Raphson root finding
and least-squares polynomial fitting.

Commands:
  fit       - fit a polynomial to a sample file
  maximize  - climb a built-in objective
  minimize  - descend a built-in objective
  newton    - solve a built-in 2x2 system
  problems  - list the built-in objectives and systems`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides log.level)")
	root.PersistentFlags().BoolVar(&a.traceOn, "trace", false, "log every iteration at info level")

	root.AddCommand(
		a.newFitCommand(),
		a.newSearchCommand(routineMaximize),
		a.newSearchCommand(routineMinimize),
		a.newNewtonCommand(),
		newProblemsCommand(),
	)

	return root
}

// setup loads the configuration and prepares the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	if err := a.cfg.Log.Configure(a.log); err != nil {
		return fmt.Errorf("--log-level %q: %w", a.cfg.Log.Level, err)
	}
	a.log.WithFields(logrus.Fields{
		"config": a.cfgFile,
		"level":  a.cfg.Log.Level,
		"trace":  a.traceOn,
	}).Debug("configuration loaded")

	return nil
}

// sink returns the trace sink for one run: per-iteration records go to Debug,
// or to Info with --trace.
func (a *app) sink() trace.Sink {
	level := logrus.DebugLevel
	if a.traceOn {
		level = logrus.InfoLevel
	}

	return trace.NewLogrusSink(a.log, level)
}
