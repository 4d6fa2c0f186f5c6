package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrDataNotFound indicates the data file path did not resolve to a
// readable file.
var ErrDataNotFound = errors.New("timeseries: data file not found")

// PrepareOptions holds options for preparing raw tabular data.
type PrepareOptions struct {
	TimestampColumn string // Column with timestamps (required)
	ValueColumn     string // Column with values, summed per bucket (required)
	TimestampLayout string // Go time layout (default: "200601", e.g. 202306)
	Delimiter       rune   // Field delimiter (default: ',')
}

// DefaultPrepareOptions returns default options for Prepare.
func DefaultPrepareOptions() *PrepareOptions {
	return &PrepareOptions{
		TimestampColumn: "ds",
		ValueColumn:     "y",
		TimestampLayout: "200601",
		Delimiter:       ',',
	}
}

// Prepare reads a delimited file, aggregates the value column by parsed time
// bucket, and returns the resulting series scaled to [0, 1].
//
// The file must have a header row containing both named columns; any other
// columns are ignored. Rows are grouped by the timestamp column parsed with
// the configured layout, the value column is summed per bucket, and buckets
// are sorted ascending before min-max scaling. The file is read fully and
// closed before any aggregation work.
//
// Returns ErrDataNotFound when the path cannot be opened; timestamp and
// value parse failures are returned with the offending row number.
func Prepare(path string, opts *PrepareOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%v)", ErrDataNotFound, path, err)
	}
	defer f.Close()

	return PrepareFromReader(f, opts)
}

// PrepareFromReader is Prepare over an io.Reader.
func PrepareFromReader(r io.Reader, opts *PrepareOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultPrepareOptions()
	}
	layout := opts.TimestampLayout
	if layout == "" {
		layout = "200601"
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("timeseries: read header: %w", err)
	}

	tsIdx, valIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.Trim(h, "\"")) {
		case opts.TimestampColumn:
			tsIdx = i
		case opts.ValueColumn:
			valIdx = i
		}
	}
	if tsIdx == -1 {
		return nil, fmt.Errorf("timeseries: timestamp column %q not found in header", opts.TimestampColumn)
	}
	if valIdx == -1 {
		return nil, fmt.Errorf("timeseries: value column %q not found in header", opts.ValueColumn)
	}

	totals := make(map[time.Time]float64)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("timeseries: read row %d: %w", row+1, err)
		}
		row++

		tsStr := strings.TrimSpace(strings.Trim(record[tsIdx], "\""))
		bucket, err := time.Parse(layout, tsStr)
		if err != nil {
			return nil, fmt.Errorf("timeseries: parse timestamp %q (row %d): %w", tsStr, row, err)
		}

		valStr := strings.TrimSpace(strings.Trim(record[valIdx], "\""))
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: parse value %q (row %d): %w", valStr, row, err)
		}

		totals[bucket] += val
	}

	if len(totals) == 0 {
		return nil, errors.New("timeseries: no data rows found")
	}

	buckets := make([]time.Time, 0, len(totals))
	for bucket := range totals {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	values := make([]float64, len(buckets))
	for i, bucket := range buckets {
		values[i] = totals[bucket]
	}

	s := &Series{
		Buckets: buckets,
		Values:  values,
		Name:    opts.ValueColumn,
	}
	return s.MinMaxScale(), nil
}
