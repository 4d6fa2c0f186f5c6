package plot_test

import (
	"errors"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlsequence/tsprep/forecast"
	"github.com/mlsequence/tsprep/plot"
)

// stubPredictor records Predict calls and repeats each input's last value.
type stubPredictor struct {
	horizon int
	calls   int
	err     error
	batch   [][]float64 // overrides the computed batch when set
}

func (s *stubPredictor) Predict(inputs [][]float64) ([][]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.batch != nil {
		return s.batch, nil
	}
	return forecast.Naive{Horizon: s.horizon}.Predict(inputs)
}

func validationFixture() (valInputs, expected [][]float64) {
	valInputs = [][]float64{
		{0.1, 0.2, 0.3},
		{0.2, 0.3, 0.4},
	}
	expected = [][]float64{
		{0.3, 0.35},
		{0.4, 0.45},
	}
	return valInputs, expected
}

func TestValidationChart_IndexBounds(t *testing.T) {
	valInputs, expected := validationFixture()
	model := &stubPredictor{horizon: 2}

	// Last valid index succeeds.
	_, err := plot.ValidationChart(model, valInputs, expected, len(expected)-1)
	assert.NoError(t, err)

	// One past the end fails.
	_, err = plot.ValidationChart(model, valInputs, expected, len(expected))
	assert.ErrorIs(t, err, plot.ErrIndexOutOfRange)

	// Negative index fails.
	_, err = plot.ValidationChart(model, valInputs, expected, -1)
	assert.ErrorIs(t, err, plot.ErrIndexOutOfRange)
}

// TestValidationChart_SingleBatchedCall verifies inference happens as one
// batched call over the whole validation set.
func TestValidationChart_SingleBatchedCall(t *testing.T) {
	valInputs, expected := validationFixture()
	model := &stubPredictor{horizon: 2}

	_, err := plot.ValidationChart(model, valInputs, expected, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, model.calls)
}

// TestValidationChart_TraceAlignment checks the three traces share one axis:
// the input occupies offsets 0..len(input)-1 and the predicted/expected
// traces start at len(input)-1, joined on the overlap point.
func TestValidationChart_TraceAlignment(t *testing.T) {
	valInputs, expected := validationFixture()
	model := &stubPredictor{horizon: 2}

	line, err := plot.ValidationChart(model, valInputs, expected, 0)
	require.NoError(t, err)
	require.Len(t, line.MultiSeries, 3)

	byName := map[string][]opts.LineData{}
	for _, s := range line.MultiSeries {
		data, ok := s.Data.([]opts.LineData)
		require.True(t, ok, "series %q must carry line data", s.Name)
		byName[s.Name] = data
	}
	require.Contains(t, byName, plot.SeriesPredicted)
	require.Contains(t, byName, plot.SeriesInput)
	require.Contains(t, byName, plot.SeriesExpected)

	start := len(valInputs[0]) - 1 // 2
	total := start + 2             // forecast horizon 2
	for name, data := range byName {
		assert.Len(t, data, total, "series %q axis length", name)
	}

	// Input trace fills the prefix, then padding.
	assert.Equal(t, 0.1, byName[plot.SeriesInput][0].Value)
	assert.Equal(t, 0.3, byName[plot.SeriesInput][start].Value)
	assert.Equal(t, "-", byName[plot.SeriesInput][total-1].Value)

	// Predicted and expected traces are padded before the overlap point.
	assert.Equal(t, "-", byName[plot.SeriesPredicted][0].Value)
	assert.Equal(t, 0.3, byName[plot.SeriesPredicted][start].Value) // naive repeats last input value
	assert.Equal(t, 0.3, byName[plot.SeriesExpected][start].Value)  // overlap anchor
	assert.Equal(t, 0.35, byName[plot.SeriesExpected][start+1].Value)
}

func TestValidationChart_PredictorFailures(t *testing.T) {
	valInputs, expected := validationFixture()

	boom := errors.New("model offline")
	_, err := plot.ValidationChart(&stubPredictor{err: boom}, valInputs, expected, 0)
	assert.ErrorIs(t, err, boom)

	// A collaborator returning a short batch is rejected.
	short := &stubPredictor{batch: [][]float64{{0.5, 0.5}}}
	_, err = plot.ValidationChart(short, valInputs, expected, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 forecasts for 2 inputs")
}
