package cli

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hgubler/BNForest/pkg/data"
	"github.com/hgubler/BNForest/pkg/plotting"
	"github.com/hgubler/BNForest/pkg/stats"
)

// CompareOptions holds the flags of the compare command.
type CompareOptions struct {
	PlotDir string
	Bins    int
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <real.csv> <synthetic.csv>",
		Short: "Compare marginal statistics and correlations of two datasets",
		Long: `Compare prints mean, standard deviation, minimum and maximum of every
column in both datasets, then the pairwise Pearson correlations and their
absolute gap. With --plot, one histogram PNG per column is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actual, err := data.LoadCSV(args[0])
			if err != nil {
				return err
			}
			synth, err := data.LoadCSV(args[1])
			if err != nil {
				return err
			}
			if !slices.Equal(actual.Names(), synth.Names()) {
				return fmt.Errorf("column mismatch: %v vs %v", actual.Names(), synth.Names())
			}

			if err := writeComparison(cmd.OutOrStdout(), actual, synth); err != nil {
				return err
			}
			if opts.PlotDir == "" {
				return nil
			}
			logger := rootOpts.Logger(cmd.ErrOrStderr())
			for _, name := range actual.Names() {
				path := filepath.Join(opts.PlotDir, name+".png")
				r, _ := actual.Column(name)
				s, _ := synth.Column(name)
				err := plotting.Histograms(path, name, opts.Bins,
					plotting.Series{Label: "real", Values: r},
					plotting.Series{Label: "synthetic", Values: s},
				)
				if err != nil {
					return err
				}
				logger.Info("wrote histogram", "column", name, "path", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.PlotDir, "plot", "", "directory for per-column histogram PNGs")
	cmd.Flags().IntVar(&opts.Bins, "bins", 20, "histogram bins")

	return cmd
}

// writeComparison prints the marginal table followed by the correlation table.
func writeComparison(w io.Writer, actual, synth *data.Dataset) error {
	names := actual.Names()
	fmt.Fprintf(w, "rows: real=%d synthetic=%d\n\n", actual.Len(), synth.Len())
	fmt.Fprintf(w, "%-12s %-5s %12s %12s\n", "column", "stat", "real", "synthetic")
	for _, name := range names {
		r, err := actual.Column(name)
		if err != nil {
			return err
		}
		s, err := synth.Column(name)
		if err != nil {
			return err
		}
		rs, ss := stats.Describe(r), stats.Describe(s)
		for _, row := range []struct {
			stat string
			r, s float64
		}{
			{"mean", rs.Mean, ss.Mean},
			{"std", rs.Std, ss.Std},
			{"min", rs.Min, ss.Min},
			{"max", rs.Max, ss.Max},
		} {
			fmt.Fprintf(w, "%-12s %-5s %12.4f %12.4f\n", name, row.stat, row.r, row.s)
		}
	}

	if len(names) < 2 {
		return nil
	}
	fmt.Fprintf(w, "\n%-25s %12s %12s %12s\n", "pair", "real", "synthetic", "gap")
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			rc, err := correlation(actual, names[i], names[j])
			if err != nil {
				return err
			}
			sc, err := correlation(synth, names[i], names[j])
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-25s %12.4f %12.4f %12.4f\n", names[i]+" ~ "+names[j], rc, sc, math.Abs(rc-sc))
		}
	}
	return nil
}

func correlation(ds *data.Dataset, a, b string) (float64, error) {
	x, err := ds.Column(a)
	if err != nil {
		return 0, err
	}
	y, err := ds.Column(b)
	if err != nil {
		return 0, err
	}
	return stats.Correlation(x, y), nil
}
