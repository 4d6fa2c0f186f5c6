package window

import (
	"fmt"

	"github.com/mlsequence/tsprep/timeseries"
)

// Dataset holds the four windowed arrays produced by TrainValSplit, ready to
// feed a sequence model, along with the resulting sample counts.
type Dataset struct {
	TrainInputs  [][]float64
	TrainOutputs [][]float64
	ValInputs    [][]float64
	ValOutputs   [][]float64

	TrainSamples int
	ValSamples   int
}

// TrainValSplit divides a sequence into train and validation partitions and
// windows each with Split. The validation partition is always the suffix,
// sized so that windowing it yields exactly valSamples windows:
//
//	splitIdx = len(series) - (nInput + nOutput - 1) - (valSamples - 1)
//
// Both partitions preserve order and together cover the whole series. When
// valSamples asks for more than the series supports, the too-short partition
// propagates ErrInsufficientSequence. valSamples must be at least 2: the
// formula sizes the suffix for one window at nInput+nOutput-1 points, which
// Split's minimum-length guard rejects.
func TrainValSplit(series []float64, nInput, nOutput, valSamples int) (*Dataset, error) {
	if nInput < 1 || nOutput < 1 {
		return nil, fmt.Errorf("%w: got n_input=%d, n_output=%d", ErrWindowSize, nInput, nOutput)
	}
	if valSamples < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleCount, valSamples)
	}

	splitIdx := len(series) - (nInput + nOutput - 1) - (valSamples - 1)
	if splitIdx < 0 {
		splitIdx = 0
	}
	train := series[:splitIdx]
	valid := series[splitIdx:]

	trainIn, trainOut, err := Split(train, nInput, nOutput)
	if err != nil {
		return nil, fmt.Errorf("train partition: %w", err)
	}
	valIn, valOut, err := Split(valid, nInput, nOutput)
	if err != nil {
		return nil, fmt.Errorf("validation partition: %w", err)
	}

	return &Dataset{
		TrainInputs:  trainIn,
		TrainOutputs: trainOut,
		ValInputs:    valIn,
		ValOutputs:   valOut,
		TrainSamples: len(trainIn),
		ValSamples:   len(valIn),
	}, nil
}

// SplitSeries windows the values of a prepared series. See TrainValSplit.
func SplitSeries(s *timeseries.Series, nInput, nOutput, valSamples int) (*Dataset, error) {
	return TrainValSplit(s.Values, nInput, nOutput, valSamples)
}
