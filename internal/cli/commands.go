package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citysearch/internal/server"
)

func newRouteCommand(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Search one route and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := a.runner.Run(a.cfg.DefaultStrategy(), from, to)
			if err != nil {
				return err
			}
			WriteReport(cmd.OutOrStdout(), rep)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "starting town")
	cmd.Flags().StringVar(&to, "to", "", "ending town")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy on one query and print a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := a.runner.Compare(from, to)
			if err != nil {
				return err
			}

			return WriteComparison(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "starting town")
	cmd.Flags().StringVar(&to, "to", "", "ending town")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCitiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the loaded cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return WriteCities(cmd.OutOrStdout(), a.graph)
		},
	}
}

func newServeCommand(ctx context.Context, a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := a.cfg.Listen
			if cmd.Flags().Changed("listen") {
				addr = listen
			}
			h := server.NewRouteHandler(a.runner, a.cfg.DefaultStrategy())
			fmt.Fprintf(cmd.OutOrStdout(), "serving %d cities on %s\n", a.graph.CityCount(), addr)

			return errors.Wrap(server.ListenAndServe(ctx, addr, server.NewRouter(h)), "serve")
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address, overrides the configured one")

	return cmd
}
