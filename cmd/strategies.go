package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rasterbench/internal/cpu"
	"github.com/cwbudde/rasterbench/internal/parallel"
	"github.com/cwbudde/rasterbench/internal/raster"
)

var strategyDescriptions = map[raster.Name]string{
	raster.NameScalar:         "one pixel per iteration (baseline)",
	raster.NameThreaded:       "scalar loop split across worker goroutines",
	raster.NameVector:         "8 pixels per step with lane primitives",
	raster.NameApproxVector:   "one formula evaluation per 8-pixel block, broadcast",
	raster.NameThreadedVector: "8-pixel blocks split across worker goroutines",
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List strategies and host features",
	RunE:  runListStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runListStrategies(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	features := cpu.Detect()

	fmt.Fprintf(out, "Host: %s\n", features)
	fmt.Fprintf(out, "Default workers: %d\n\n", parallel.Workers())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEXACT\tTHREADED\tDESCRIPTION")
	for _, s := range raster.All(raster.Options{}) {
		_, threaded := s.(interface{ Workers() int })
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.Name(),
			yesNo(s.Exact()),
			yesNo(threaded),
			strategyDescriptions[s.Name()],
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	fmt.Fprintf(out, "\nRemainder policies: fill, drop, reject\n")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
