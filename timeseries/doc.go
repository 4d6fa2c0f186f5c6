// Package timeseries provides loading, aggregation, and scaling of raw
// tabular data into time series.
//
// This package includes the Series type for representing a time-indexed
// column of values, along with Prepare, which turns a raw delimited file
// into a scaled series ready for windowing.
//
// # Preparing raw data
//
// Load a monthly sales file, summing amounts per month and scaling to [0, 1]:
//
//	series, err := timeseries.Prepare("sales.csv", &timeseries.PrepareOptions{
//	    TimestampColumn: "month",    // values like 202306
//	    ValueColumn:     "amount",
//	    TimestampLayout: "200601",
//	})
//
// Rows sharing a time bucket are summed, buckets are sorted ascending, and
// the aggregated column is min-max scaled. Aggregation is deterministic:
// shuffling input rows does not change the result.
//
// # Basic statistics
//
// Summary statistics over the series values:
//
//	min := series.Min()
//	max := series.Max()
//	mean := series.Mean()
//
// # Scaling
//
// Min-max scaling is also available on its own; parameters are always
// derived from the series being scaled:
//
//	scaled := series.MinMaxScale()
//
// # Slicing and manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	clone := series.Copy()
package timeseries
