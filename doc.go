// Package tsprep provides data preparation and sequence windowing for
// time-series forecasting workflows.
//
// tsprep covers the steps between raw tabular data and a trained sequence
// model: loading and aggregating a timestamped value column, min-max scaling,
// slicing the scaled series into fixed-length input/output windows, splitting
// those windows into train and validation sets, and plotting a model's
// validation forecasts against ground truth. The forecasting model itself is
// an external collaborator behind the forecast.Predictor interface.
//
// # Features
//
//   - CSV loading with per-bucket aggregation and min-max scaling
//   - Sliding-window splitting with a one-point input/output overlap
//   - Train/validation partitioning by desired validation sample count
//   - Baseline batch predictors (naive, drift) for exercising the pipeline
//   - Validation charts comparing predicted, input, and expected values
//
// # Quick Start
//
// Prepare a scaled monthly series and window it:
//
//	series, _ := timeseries.Prepare("sales.csv", &timeseries.PrepareOptions{
//	    TimestampColumn: "month",   // e.g. 202306
//	    ValueColumn:     "amount",
//	})
//	ds, _ := window.SplitSeries(series, 12, 3, 6)
//
// Plot one validation sample against a baseline forecast:
//
//	model := forecast.Naive{Horizon: 3}
//	chart, _ := plot.ValidationChart(model, ds.ValInputs, ds.ValOutputs, 0)
//	chart.Render(w)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: loading, aggregation, and scaling of raw tabular data
//   - window: sliding-window splitting and train/validation partitioning
//   - forecast: the batch predictor collaborator surface and baselines
//   - plot: validation charts rendered with go-echarts
package tsprep
