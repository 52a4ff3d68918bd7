package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haukland/seastate/rainflow"
)

var (
	cyclesInd      []int
	cyclesSkipRows int
	cyclesNBins    int
	cyclesBinWidth float64
	cyclesNDigits  int
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles <file>",
	Short: "Rainflow cycle counts per response series",
	Long: `Count fatigue cycles in each response series with the rainflow method
of ASTM E1049-85 and print range/mean/count tables. Half cycles count 0.5.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, responses, err := loadSeries(args[0], cyclesInd, cyclesSkipRows)
		if err != nil {
			return err
		}

		opts := &rainflow.CountOptions{
			NBins:    cyclesNBins,
			BinWidth: cyclesBinWidth,
		}
		if cyclesNDigits >= 0 {
			opts.NDigits = &cyclesNDigits
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for i, x := range responses {
			rows, err := rainflow.CountCycles(x, opts)
			if err != nil {
				return fmt.Errorf("series %d: %w", i+1, err)
			}
			fmt.Fprintf(w, "series %d\t\t\n", i+1)
			fmt.Fprintln(w, "range\tmean\tcount")
			for _, r := range rows {
				if math.IsNaN(r.Mean) {
					fmt.Fprintf(w, "%.4g\t-\t%.4g\n", r.Range, r.Count)
					continue
				}
				fmt.Fprintf(w, "%.4g\t%.4g\t%.4g\n", r.Range, r.Mean, r.Count)
			}
		}
		return w.Flush()
	},
}

func init() {
	cyclesCmd.Flags().IntSliceVar(&cyclesInd, "ind", nil,
		"response indices to include (1-based, default all)")
	cyclesCmd.Flags().IntVar(&cyclesSkipRows, "skip-rows", 0,
		"header lines to skip in ASCII files")
	cyclesCmd.Flags().IntVar(&cyclesNBins, "nbins", 0,
		"group cycles into this many equal-width range bins")
	cyclesCmd.Flags().Float64Var(&cyclesBinWidth, "bin-width", 0,
		"group cycles into range bins of this width")
	cyclesCmd.Flags().IntVar(&cyclesNDigits, "ndigits", -1,
		"round cycle ranges and means to this many digits before counting")
	rootCmd.AddCommand(cyclesCmd)
}
