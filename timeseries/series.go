package timeseries

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a time series of aggregated values, one per time bucket,
// ordered ascending by bucket. All transforms return copies; a Series is
// never mutated after it is produced.
type Series struct {
	Buckets []time.Time
	Values  []float64
	Name    string
}

// New creates a series from bare values with a synthetic hourly index.
func New(values []float64) *Series {
	buckets := make([]time.Time, len(values))
	base := time.Now()
	for i := range buckets {
		buckets[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Buckets: buckets,
		Values:  values,
	}
}

// NewWithBuckets creates a series with explicit time buckets.
func NewWithBuckets(buckets []time.Time, values []float64) (*Series, error) {
	if len(buckets) != len(values) {
		return nil, errors.New("timeseries: buckets and values must have the same length")
	}
	return &Series{
		Buckets: buckets,
		Values:  values,
	}, nil
}

// Len returns the number of buckets in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	return floats.Max(s.Values)
}

// Mean returns the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	return stat.Mean(s.Values, nil)
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	buckets := make([]time.Time, len(values))
	if len(s.Buckets) >= end {
		copy(buckets, s.Buckets[start:end])
	}

	return &Series{
		Buckets: buckets,
		Values:  values,
		Name:    s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	buckets := make([]time.Time, len(s.Buckets))
	copy(buckets, s.Buckets)

	return &Series{
		Buckets: buckets,
		Values:  values,
		Name:    s.Name,
	}
}

// MinMaxScale linearly rescales the series so its observed minimum maps to
// 0.0 and its maximum to 1.0. The parameters come solely from the series
// being scaled; a constant series maps to all zeros. Scaling a series that
// already spans [0, 1] leaves its values unchanged.
func (s *Series) MinMaxScale() *Series {
	out := s.Copy()
	out.Name = s.Name + "_scaled"
	if len(out.Values) == 0 {
		return out
	}

	min := floats.Min(out.Values)
	span := floats.Max(out.Values) - min
	if span == 0 {
		for i := range out.Values {
			out.Values[i] = 0
		}
		return out
	}
	for i, v := range s.Values {
		out.Values[i] = (v - min) / span
	}
	return out
}
