package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haukland/seastate/signal"
	"github.com/haukland/seastate/stats"
)

var (
	statsInd      []int
	statsSkipRows int
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Summary statistics per response series",
	Long: `Print descriptive statistics for each response series in a time series
file, together with the average mean level up-crossing frequency.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, responses, err := loadSeries(args[0], statsInd, statsSkipRows)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "series\tn\tmin\tmax\tmean\tstd\tskew\tkurt\ttz [s]")
		for i, x := range responses {
			s := stats.Describe(x)
			period := "-"
			if f, err := signal.AverageFrequency(t, x, true); err == nil {
				period = fmt.Sprintf("%.4g", 1/f)
			} else if !errors.Is(err, signal.ErrInsufficientData) {
				return err
			}
			fmt.Fprintf(w, "%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
				i+1, s.N, s.Min, s.Max, s.Mean, s.Std, s.Skewness, s.Kurtosis, period)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().IntSliceVar(&statsInd, "ind", nil,
		"response indices to include (1-based, default all)")
	statsCmd.Flags().IntVar(&statsSkipRows, "skip-rows", 0,
		"header lines to skip in ASCII files")
	rootCmd.AddCommand(statsCmd)
}
