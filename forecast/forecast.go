// Package forecast defines the collaborator surface for forecasting models
// plus simple baseline predictors.
//
// The data-preparation pipeline never trains a model; it only needs a batch
// inference capability. Predictor is that capability, and Naive and Drift
// are training-free baselines for exercising the pipeline end to end.
package forecast

import (
	"errors"
	"fmt"
)

// Predictor is the forecasting-model collaborator: given a batch of input
// windows it returns a matching batch of forecast sequences, deterministic
// per call.
type Predictor interface {
	Predict(inputs [][]float64) ([][]float64, error)
}

// ErrEmptyWindow indicates an input window with no observations.
var ErrEmptyWindow = errors.New("forecast: input window is empty")

// ErrHorizon indicates a non-positive forecast horizon.
var ErrHorizon = errors.New("forecast: horizon must be positive")

// Naive is the persistence baseline: each forecast repeats the input
// window's last observed value for Horizon steps.
type Naive struct {
	Horizon int
}

// Predict implements Predictor.
func (n Naive) Predict(inputs [][]float64) ([][]float64, error) {
	if n.Horizon < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrHorizon, n.Horizon)
	}
	forecasts := make([][]float64, len(inputs))
	for i, in := range inputs {
		if len(in) == 0 {
			return nil, fmt.Errorf("%w: batch index %d", ErrEmptyWindow, i)
		}
		last := in[len(in)-1]
		f := make([]float64, n.Horizon)
		for j := range f {
			f[j] = last
		}
		forecasts[i] = f
	}
	return forecasts, nil
}

// Drift extends the straight line between the input window's first and last
// observations for Horizon steps.
type Drift struct {
	Horizon int
}

// Predict implements Predictor.
func (d Drift) Predict(inputs [][]float64) ([][]float64, error) {
	if d.Horizon < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrHorizon, d.Horizon)
	}
	forecasts := make([][]float64, len(inputs))
	for i, in := range inputs {
		if len(in) == 0 {
			return nil, fmt.Errorf("%w: batch index %d", ErrEmptyWindow, i)
		}
		last := in[len(in)-1]
		slope := 0.0
		if len(in) > 1 {
			slope = (last - in[0]) / float64(len(in)-1)
		}
		f := make([]float64, d.Horizon)
		for j := range f {
			f[j] = last + slope*float64(j+1)
		}
		forecasts[i] = f
	}
	return forecasts, nil
}
