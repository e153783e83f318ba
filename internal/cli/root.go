// Package cli implements the citysearch command line: an interactive query
// loop plus the route, compare, cities and serve commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/config"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/query"
	"github.com/katalvlaran/citysearch/loader"
)

// Input holds the global flags.
type Input struct {
	configPath  string
	coordinates string
	adjacencies string
	strategy    string
	maxDepth    int
	logLevel    string
	verbose     bool
}

// app is the state shared by every command after PersistentPreRunE.
type app struct {
	input  Input
	cfg    *config.Config
	graph  *core.Graph
	runner *query.Runner
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the interactive loop.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "citysearch",
		Short:             "Find routes between cities with BFS, DFS, ID-DFS, greedy best-first or A*",
		Args:              cobra.NoArgs,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return NewSession(a.runner, p, cmd.OutOrStdout()).Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.input.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&a.input.coordinates, "coordinates", "", "coordinates CSV (name,lat,lon per line)")
	flags.StringVar(&a.input.adjacencies, "adjacencies", "", "adjacency file (two city names per line)")
	flags.StringVarP(&a.input.strategy, "strategy", "s", "",
		fmt.Sprintf("default strategy, 1-5 or one of %s", strings.Join(strategyNames(), ", ")))
	flags.IntVar(&a.input.maxDepth, "max-depth", -1, "iterative-deepening bound, -1 for the city count")
	flags.StringVar(&a.input.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&a.input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newRouteCommand(a),
		newCompareCommand(a),
		newCitiesCommand(a),
		newServeCommand(ctx, a),
	)

	return rootCmd
}

// setup resolves configuration, configures logging and loads the graph.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if skipSetup(cmd) {
		return nil
	}
	cfg, err := config.Load(a.input.configPath)
	if err != nil {
		return err
	}
	if err = a.applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(cfg.Level())
	if a.input.verbose {
		log.SetLevel(log.DebugLevel)
	}

	g, err := loader.Load(cfg.Coordinates, cfg.Adjacencies)
	if err != nil {
		return errors.Wrap(err, "load graph")
	}

	a.cfg = cfg
	a.graph = g
	a.runner = query.NewRunner(g, cfg.DepthBound(g.CityCount()))

	return nil
}

// applyFlags copies explicitly set flags over the resolved configuration.
func (a *app) applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	if flags.Changed("coordinates") {
		cfg.Coordinates = a.input.coordinates
	}
	if flags.Changed("adjacencies") {
		cfg.Adjacencies = a.input.adjacencies
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.input.strategy
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.input.maxDepth
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.input.logLevel
	}

	return cfg.Validate()
}

// skipSetup reports whether cmd is cobra's help or completion machinery,
// which must work without input files.
func skipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}

	return false
}

func strategyNames() []string {
	names := make([]string, 0, len(citysearch.Strategies()))
	for _, s := range citysearch.Strategies() {
		names = append(names, s.String())
	}

	return names
}
