package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// writeReport prints one row per strategy.
func writeReport(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nALGORITHM\tOUTCOME\tPATH\tCOST\tEXPANDED\tGENERATED\tMAX FRONTIER")
	for _, s := range summaries {
		r := s.Result
		outcome := r.Outcome.String()
		if s.Limited {
			outcome = "limit"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%d\t%d\t%d\n",
			s.Strategy, outcome, len(r.Path), r.PathCost, r.Expanded, r.Generated, r.MaxFrontier)
	}
	return tw.Flush()
}
