package window

import "fmt"

// Split slices an ordered sequence into paired input/output windows for a
// sequence model. Each input has length nInput and each output has length
// nOutput; the first element of every output repeats the last element of its
// input, so the model sees the last known value as the output anchor:
//
//	Split([]float64{1, 2, 3, 4, 5}, 3, 2)
//	// inputs:  [[1 2 3] [2 3 4]]
//	// outputs: [[3 4] [4 5]]
//
// Windows are emitted in ascending start order and only when they fit fully
// inside the sequence; there is no padding or wraparound. Every window is a
// copy, never a view into the caller's slice.
//
// Returns ErrInsufficientSequence when len(sequence) < nInput+nOutput. Note
// that a single pair spans only nInput+nOutput-1 points because of the
// overlap, so a sequence at the accepted minimum always yields two windows;
// one point fewer is rejected outright.
func Split(sequence []float64, nInput, nOutput int) (inputs, outputs [][]float64, err error) {
	if nInput < 1 || nOutput < 1 {
		return nil, nil, fmt.Errorf("%w: got n_input=%d, n_output=%d", ErrWindowSize, nInput, nOutput)
	}
	if len(sequence) < nInput+nOutput {
		return nil, nil, fmt.Errorf("%w: have %d points, need at least %d",
			ErrInsufficientSequence, len(sequence), nInput+nOutput)
	}

	for i := range sequence {
		inputEnd := i + nInput
		outputEnd := inputEnd + nOutput - 1
		if outputEnd > len(sequence) {
			break
		}

		in := make([]float64, nInput)
		copy(in, sequence[i:inputEnd])
		out := make([]float64, nOutput)
		copy(out, sequence[inputEnd-1:outputEnd])

		inputs = append(inputs, in)
		outputs = append(outputs, out)
	}
	return inputs, outputs, nil
}
