// Package plot renders validation forecasts against ground truth.
//
// ValidationChart obtains a batched forecast from a Predictor collaborator
// and lines up three traces on one integer time axis: the input window, the
// predicted sequence, and the expected sequence. The returned *charts.Line
// is a renderable handle; the package itself writes no files.
package plot

import (
	"errors"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mlsequence/tsprep/forecast"
)

// ErrIndexOutOfRange indicates the requested sample index is outside the
// available validation samples.
var ErrIndexOutOfRange = errors.New("plot: sample index out of range")

// Trace names on the rendered chart.
const (
	SeriesPredicted = "predicted"
	SeriesInput     = "input"
	SeriesExpected  = "expected"
)

// ValidationChart forecasts the whole validation batch in one Predict call,
// picks the sample at sampleIndex, and charts its forecast against the
// original input window and the expected output window.
//
// The input trace occupies offsets 0..len(input)-1. The predicted and
// expected traces start at offset len(input)-1: windowed pairs overlap by
// one point, so the expected sequence's first value is the input's last
// value and the traces join on the chart.
//
// Returns ErrIndexOutOfRange unless 0 <= sampleIndex < len(expected).
func ValidationChart(model forecast.Predictor, valInputs, expected [][]float64, sampleIndex int) (*charts.Line, error) {
	if sampleIndex < 0 || sampleIndex >= len(expected) || sampleIndex >= len(valInputs) {
		return nil, fmt.Errorf("%w: index %d with %d validation samples",
			ErrIndexOutOfRange, sampleIndex, len(expected))
	}

	forecasts, err := model.Predict(valInputs)
	if err != nil {
		return nil, fmt.Errorf("plot: predict validation batch: %w", err)
	}
	if len(forecasts) != len(valInputs) {
		return nil, fmt.Errorf("plot: model returned %d forecasts for %d inputs",
			len(forecasts), len(valInputs))
	}

	input := valInputs[sampleIndex]
	predicted := forecasts[sampleIndex]
	expect := expected[sampleIndex]
	if len(input) == 0 {
		return nil, fmt.Errorf("plot: validation input %d is empty", sampleIndex)
	}

	start := len(input) - 1
	total := len(input)
	if n := start + len(predicted); n > total {
		total = n
	}
	if n := start + len(expect); n > total {
		total = n
	}

	axis := make([]int, total)
	for i := range axis {
		axis[i] = i
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Validation forecast"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
	)
	line.SetXAxis(axis).
		AddSeries(SeriesPredicted, traceAt(start, predicted, total)).
		AddSeries(SeriesInput, traceAt(0, input, total)).
		AddSeries(SeriesExpected, traceAt(start, expect, total))

	return line, nil
}

// traceAt places values on the shared axis from offset onward, padding the
// remaining positions with ECharts' missing-value marker so the three traces
// stay aligned on one axis.
func traceAt(offset int, values []float64, total int) []opts.LineData {
	data := make([]opts.LineData, total)
	for i := range data {
		data[i] = opts.LineData{Value: "-"}
	}
	for i, v := range values {
		data[offset+i] = opts.LineData{Value: v}
	}
	return data
}
