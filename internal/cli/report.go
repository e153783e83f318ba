package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/query"
)

// WriteReport prints the outcome of one search.
func WriteReport(w io.Writer, rep *query.Report) {
	if !rep.Result.Found {
		fmt.Fprintln(w, "No route found.")
		return
	}
	fmt.Fprintf(w, "Route found: %s\n", rep.Result.Path)
	fmt.Fprintf(w, "Total distance: %.2f km\n", rep.DistanceKm)
	fmt.Fprintf(w, "Time taken: %.4f seconds\n", rep.Elapsed.Seconds())
}

// WriteComparison prints one row per strategy.
func WriteComparison(w io.Writer, reports []*query.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tHOPS\tKM\tEXPANDED\tSECONDS\tROUTE")
	for _, rep := range reports {
		hops, route := "-", "no route"
		if rep.Result.Found {
			hops = fmt.Sprint(rep.Result.Path.Hops())
			route = rep.Result.Path.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%.4f\t%s\n",
			rep.Strategy.Description(), hops, rep.DistanceKm, rep.Result.Expanded, rep.Elapsed.Seconds(), route)
	}

	return tw.Flush()
}

// WriteCities lists every city with its coordinate and degree.
func WriteCities(w io.Writer, g *core.Graph) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tLAT\tLON\tDEGREE")
	for _, name := range g.Cities() {
		c, err := g.Coordinate(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%d\n", name, c.Lat, c.Lon, g.Degree(name))
	}
	fmt.Fprintf(tw, "\n%d cities, %d edges\n", g.CityCount(), g.EdgeCount())

	return tw.Flush()
}
