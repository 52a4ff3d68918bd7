package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haukland/seastate/signal"
)

var (
	psdInd      []int
	psdSkipRows int
	psdNPerSeg  int
	psdNFFT     int
	psdDetrend  string
	psdOut      string
)

var psdCmd = &cobra.Command{
	Use:   "psd <file>",
	Short: "Welch power spectral density per response series",
	Long: `Estimate the power spectral density of each response series with Welch's
method and write frequency/density columns, frequency first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, responses, err := loadSeries(args[0], psdInd, psdSkipRows)
		if err != nil {
			return err
		}
		dt, err := timeStep(t)
		if err != nil {
			return err
		}

		var freqs []float64
		densities := make([][]float64, len(responses))
		for i, x := range responses {
			f, p := signal.PSD(x, dt, &signal.PSDOptions{
				NPerSeg: psdNPerSeg,
				NFFT:    psdNFFT,
				Detrend: signal.DetrendMode(psdDetrend),
			})
			freqs = f
			densities[i] = p
		}

		out := os.Stdout
		if psdOut != "" {
			f, err := os.Create(psdOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		w := bufio.NewWriter(out)
		for j := range freqs {
			fmt.Fprintf(w, "%.6e", freqs[j])
			for _, p := range densities {
				fmt.Fprintf(w, " %.6e", p[j])
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}

func init() {
	psdCmd.Flags().IntSliceVar(&psdInd, "ind", nil,
		"response indices to include (1-based, default all)")
	psdCmd.Flags().IntVar(&psdSkipRows, "skip-rows", 0,
		"header lines to skip in ASCII files")
	psdCmd.Flags().IntVar(&psdNPerSeg, "nperseg", 0,
		"segment length (default 1/4 of the series)")
	psdCmd.Flags().IntVar(&psdNFFT, "nfft", 0,
		"FFT length, zero-pads segments (default the segment length)")
	psdCmd.Flags().StringVar(&psdDetrend, "detrend", "constant",
		"detrending applied before the estimate (constant, linear, none)")
	psdCmd.Flags().StringVarP(&psdOut, "output", "o", "",
		"output file (default stdout)")
	rootCmd.AddCommand(psdCmd)
}
