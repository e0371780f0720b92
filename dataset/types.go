package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/intervals/interval"
)

// Sentinel errors returned by the loaders.
var (
	// ErrEmptyInput indicates a payload with nothing to decode.
	ErrEmptyInput = errors.New("dataset: input is empty")

	// ErrMissingField indicates a job without start, end or weight.
	ErrMissingField = errors.New("dataset: required field missing")

	// ErrBadRecord indicates a malformed CSV row or an unexpected document shape.
	ErrBadRecord = errors.New("dataset: malformed record")

	// ErrUnknownFormat indicates a file extension no loader handles.
	ErrUnknownFormat = errors.New("dataset: unknown input format")
)

// Job is one weighted interval read from a file. Start, End and Weight are
// promoted from the embedded Span, so Job satisfies
// interval.WeightedInterval[int64, int64] directly.
type Job struct {
	ID string
	interval.Span[int64, int64]
}

// NewJob builds a Job, rejecting end < start with interval.ErrInvertedBounds.
func NewJob(id string, start, end, weight int64) (Job, error) {
	span, err := interval.NewChecked(start, end, weight)
	if err != nil {
		return Job{}, fmt.Errorf("job %s: %w", id, err)
	}

	return Job{ID: id, Span: span}, nil
}

// String renders the job as "id [start, end) w=weight".
func (j Job) String() string {
	return j.ID + " " + j.Span.String()
}

// Problem is a named set of jobs competing for one resource.
type Problem struct {
	Name string
	Jobs []Job
}

// Format identifies an input encoding.
type Format int

const (
	// FormatYAML is YAML 1.2 (.yaml, .yml).
	FormatYAML Format = iota

	// FormatJSON is JSON (.json), decoded by the YAML parser.
	FormatJSON

	// FormatCSV is comma-separated rows (.csv).
	FormatCSV
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}
