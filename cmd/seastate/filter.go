package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haukland/seastate/signal"
)

var (
	filterInd      []int
	filterSkipRows int
	filterKind     string
	filterFc       float64
	filterFlow     float64
	filterFupp     float64
	filterOut      string
)

var filterCmd = &cobra.Command{
	Use:   "filter <file>",
	Short: "Frequency filter response series",
	Long: `Apply a frequency domain filter to each response series and write the
filtered series as ASCII columns, time first.

Cut-off frequencies are in Hz. Kinds:
  lowpass    keep components below --fc
  highpass   keep components above --fc
  bandpass   keep components between --flow and --fupp
  bandblock  suppress components between --flow and --fupp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, responses, err := loadSeries(args[0], filterInd, filterSkipRows)
		if err != nil {
			return err
		}
		dt, err := timeStep(t)
		if err != nil {
			return err
		}

		filtered := make([][]float64, len(responses))
		for i, x := range responses {
			switch filterKind {
			case "lowpass":
				filtered[i] = signal.Lowpass(x, dt, filterFc)
			case "highpass":
				filtered[i] = signal.Highpass(x, dt, filterFc)
			case "bandpass":
				filtered[i], err = signal.Bandpass(x, dt, filterFlow, filterFupp)
			case "bandblock":
				filtered[i], err = signal.Bandblock(x, dt, filterFlow, filterFupp)
			default:
				return fmt.Errorf("unknown filter kind %q", filterKind)
			}
			if err != nil {
				return err
			}
		}

		out := os.Stdout
		if filterOut != "" {
			f, err := os.Create(filterOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		w := bufio.NewWriter(out)
		for j := range t {
			fmt.Fprintf(w, "%.6e", t[j])
			for _, x := range filtered {
				fmt.Fprintf(w, " %.6e", x[j])
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}

func init() {
	filterCmd.Flags().IntSliceVar(&filterInd, "ind", nil,
		"response indices to include (1-based, default all)")
	filterCmd.Flags().IntVar(&filterSkipRows, "skip-rows", 0,
		"header lines to skip in ASCII files")
	filterCmd.Flags().StringVar(&filterKind, "kind", "lowpass",
		"filter kind (lowpass, highpass, bandpass, bandblock)")
	filterCmd.Flags().Float64Var(&filterFc, "fc", 0,
		"cut-off frequency [Hz] for lowpass and highpass")
	filterCmd.Flags().Float64Var(&filterFlow, "flow", 0,
		"lower cut-off frequency [Hz] for bandpass and bandblock")
	filterCmd.Flags().Float64Var(&filterFupp, "fupp", 0,
		"upper cut-off frequency [Hz] for bandpass and bandblock")
	filterCmd.Flags().StringVarP(&filterOut, "output", "o", "",
		"output file (default stdout)")
	rootCmd.AddCommand(filterCmd)
}
