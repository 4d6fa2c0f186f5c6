package timeseries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlsequence/tsprep/timeseries"
)

func TestMinMaxScale_Range(t *testing.T) {
	s := timeseries.New([]float64{20, 40, 30, 25})
	scaled := s.MinMaxScale()

	assert.InDelta(t, 0.0, scaled.Min(), 1e-12)
	assert.InDelta(t, 1.0, scaled.Max(), 1e-12)
	assert.InDelta(t, 0.5, scaled.Values[2], 1e-12)
	assert.InDelta(t, 0.25, scaled.Values[3], 1e-12)
	// Source series untouched.
	assert.Equal(t, []float64{20, 40, 30, 25}, s.Values)
}

// TestMinMaxScale_Idempotent verifies scaling a series already spanning
// [0, 1] is a no-op up to floating tolerance.
func TestMinMaxScale_Idempotent(t *testing.T) {
	s := timeseries.New([]float64{0, 0.25, 0.6, 1})
	scaled := s.MinMaxScale()

	for i, v := range s.Values {
		assert.InDelta(t, v, scaled.Values[i], 1e-12)
	}
}

func TestMinMaxScale_ConstantSeries(t *testing.T) {
	scaled := timeseries.New([]float64{7, 7, 7}).MinMaxScale()
	assert.Equal(t, []float64{0, 0, 0}, scaled.Values)
}

func TestNewWithBuckets_LengthMismatch(t *testing.T) {
	buckets := []time.Time{time.Now()}
	_, err := timeseries.NewWithBuckets(buckets, []float64{1, 2})
	assert.Error(t, err)

	s, err := timeseries.NewWithBuckets(buckets, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestSeriesStats(t *testing.T) {
	s := timeseries.New([]float64{2, 8, 5})

	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 8.0, s.Max())
	assert.InDelta(t, 5.0, s.Mean(), 1e-12)
}

func TestSlice_CopiesAndClamps(t *testing.T) {
	s := timeseries.New([]float64{1, 2, 3, 4, 5})

	sub := s.Slice(1, 4)
	require.Equal(t, []float64{2, 3, 4}, sub.Values)
	sub.Values[0] = -1
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values)

	assert.Equal(t, 5, s.Slice(-3, 99).Len())
	assert.Equal(t, 0, s.Slice(4, 2).Len())
}

func TestCopy_Independent(t *testing.T) {
	s := timeseries.New([]float64{1, 2, 3})
	c := s.Copy()
	c.Values[0] = 42

	assert.Equal(t, 1.0, s.Values[0])
	assert.Equal(t, s.Buckets, c.Buckets)
}
