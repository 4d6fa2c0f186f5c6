// Package window slices ordered numeric sequences into fixed-length
// input/output windows for sequence models.
//
// This package provides the two sample-shaping steps of the pipeline:
// Split, which turns a flat sequence into paired input/output windows with a
// deliberate one-point overlap, and TrainValSplit, which reserves a suffix of
// the sequence as a validation partition sized to yield an exact number of
// validation windows.
//
// # Windowing
//
// Split a scaled series into model samples:
//
//	inputs, outputs, err := window.Split(values, 12, 3)
//
// Each output's first element repeats its input's last element, so windowed
// pairs always satisfy input[len(input)-1] == output[0]. The overlap also
// means one pair spans only nInput+nOutput-1 points, yet sequences shorter
// than nInput+nOutput are rejected — the shortest accepted sequence
// produces two windows.
//
// # Train/validation splitting
//
// Reserve the last six windows for validation:
//
//	ds, err := window.TrainValSplit(values, 12, 3, 6)
//	// ds.TrainSamples, ds.ValSamples report the resulting counts
//
// A sequence too short for even one window is an unrecoverable input-size
// problem: both functions return ErrInsufficientSequence and callers are
// expected to abort the run rather than continue with zero samples.
package window
