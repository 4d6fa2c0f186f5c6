// Command tsprep runs the data-preparation pipeline over a raw CSV file:
// aggregate and scale the series, window it into train/validation samples,
// report the sample counts, and optionally render a validation chart for a
// baseline forecast.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlsequence/tsprep/forecast"
	"github.com/mlsequence/tsprep/plot"
	"github.com/mlsequence/tsprep/timeseries"
	"github.com/mlsequence/tsprep/window"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataPath     string
		timestampCol string
		valueCol     string
		layout       string
		nInput       int
		nOutput      int
		valSamples   int
		chartPath    string
		sampleIndex  int
	)

	cmd := &cobra.Command{
		Use:   "tsprep",
		Short: "Prepare and window a time series for sequence-model training",
		Long: `tsprep loads a raw delimited file, sums the value column per time bucket,
scales the series to [0,1], and slices it into fixed-length input/output
windows split across train and validation sets. With --chart it also renders
one validation sample against a naive baseline forecast as an HTML chart.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := timeseries.Prepare(dataPath, &timeseries.PrepareOptions{
				TimestampColumn: timestampCol,
				ValueColumn:     valueCol,
				TimestampLayout: layout,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Prepared %d time buckets from %s.\n", series.Len(), dataPath)

			ds, err := window.SplitSeries(series, nInput, nOutput, valSamples)
			if err != nil {
				return err
			}
			fmt.Printf("Created %d training samples and %d validation samples.\n",
				ds.TrainSamples, ds.ValSamples)

			if chartPath == "" {
				return nil
			}

			model := forecast.Naive{Horizon: nOutput}
			line, err := plot.ValidationChart(model, ds.ValInputs, ds.ValOutputs, sampleIndex)
			if err != nil {
				return err
			}
			f, err := os.Create(chartPath)
			if err != nil {
				return fmt.Errorf("create chart file: %w", err)
			}
			defer f.Close()
			if err := line.Render(f); err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			fmt.Printf("Wrote validation chart for sample %d to %s.\n", sampleIndex, chartPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "path to the raw CSV file (required)")
	cmd.Flags().StringVar(&timestampCol, "timestamp-col", "ds", "name of the timestamp column")
	cmd.Flags().StringVar(&valueCol, "value-col", "y", "name of the value column")
	cmd.Flags().StringVar(&layout, "layout", "200601", "Go time layout for the timestamp column")
	cmd.Flags().IntVar(&nInput, "n-input", 12, "input window length")
	cmd.Flags().IntVar(&nOutput, "n-output", 3, "output window length")
	cmd.Flags().IntVar(&valSamples, "val-samples", 6, "number of validation windows to reserve")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write a validation chart to this HTML file")
	cmd.Flags().IntVar(&sampleIndex, "sample", 0, "validation sample index to chart")
	cobra.CheckErr(cmd.MarkFlagRequired("data"))

	return cmd
}
