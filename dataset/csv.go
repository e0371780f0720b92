package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseCSV reads "start,end,weight" or "id,start,end,weight" rows into a
// single problem called name. A first row whose start column is not a
// number is taken as a header and skipped.
func parseCSV(r io.Reader, name string) ([]Problem, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var (
		jobs  []Job
		first = true
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: decode: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}
		job, err := recordToJob(record, len(jobs))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		jobs = append(jobs, job)
	}
	if len(jobs) == 0 {
		return nil, ErrEmptyInput
	}

	return []Problem{{Name: name, Jobs: jobs}}, nil
}

// isHeader reports whether the start column of record is not a number.
func isHeader(record []string) bool {
	var col int
	switch len(record) {
	case 3:
		col = 0
	case 4:
		col = 1
	default:
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(record[col]), 10, 64)

	return err != nil
}

// recordToJob converts one CSV row; pos names jobs without an id column.
func recordToJob(record []string, pos int) (Job, error) {
	var id string
	switch len(record) {
	case 3:
		id = "#" + strconv.Itoa(pos)
	case 4:
		id = strings.TrimSpace(record[0])
		if id == "" {
			id = "#" + strconv.Itoa(pos)
		}
		record = record[1:]
	default:
		return Job{}, fmt.Errorf("%w: want 3 or 4 columns, got %d", ErrBadRecord, len(record))
	}

	var (
		vals [3]int64
		i    int
		err  error
	)
	for i = range vals {
		field := strings.TrimSpace(record[i])
		if field == "" {
			return Job{}, fmt.Errorf("%w: job %s: %s", ErrMissingField, id, csvColumns[i])
		}
		vals[i], err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			return Job{}, fmt.Errorf("%w: job %s: %s: %v", ErrBadRecord, id, csvColumns[i], err)
		}
	}

	return NewJob(id, vals[0], vals[1], vals[2])
}

var csvColumns = [3]string{"start", "end", "weight"}
