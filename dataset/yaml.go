package dataset

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

type jobRecord struct {
	ID     string `yaml:"id"`
	Start  *int64 `yaml:"start"`
	End    *int64 `yaml:"end"`
	Weight *int64 `yaml:"weight"`
}

type problemRecord struct {
	Name      string      `yaml:"name"`
	Intervals []jobRecord `yaml:"intervals"`
}

type documentRecord struct {
	Problems []problemRecord `yaml:"problems"`
}

// parseYAML decodes a YAML or JSON payload. A top-level sequence is a single
// problem called name; a mapping must carry a "problems" list.
func parseYAML(r io.Reader, name string) ([]Problem, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyInput
	}

	body := root.Content[0]
	switch body.Kind {
	case yaml.SequenceNode:
		var recs []jobRecord
		if err := body.Decode(&recs); err != nil {
			return nil, fmt.Errorf("dataset: decode: %w", err)
		}
		jobs, err := toJobs(recs)
		if err != nil {
			return nil, err
		}
		return []Problem{{Name: name, Jobs: jobs}}, nil

	case yaml.MappingNode:
		var doc documentRecord
		if err := body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("dataset: decode: %w", err)
		}
		if len(doc.Problems) == 0 {
			return nil, fmt.Errorf("%w: no problems listed", ErrEmptyInput)
		}
		problems := make([]Problem, 0, len(doc.Problems))
		for i, pr := range doc.Problems {
			jobs, err := toJobs(pr.Intervals)
			if err != nil {
				return nil, fmt.Errorf("problem %d: %w", i, err)
			}
			pname := pr.Name
			if pname == "" {
				pname = name + "[" + strconv.Itoa(i) + "]"
			}
			problems = append(problems, Problem{Name: pname, Jobs: jobs})
		}
		return problems, nil

	default:
		return nil, fmt.Errorf("%w: expected a list of jobs or a problems mapping at line %d", ErrBadRecord, body.Line)
	}
}

// toJobs validates decoded records and converts them to jobs.
func toJobs(recs []jobRecord) ([]Job, error) {
	jobs := make([]Job, 0, len(recs))
	for i, rec := range recs {
		id := rec.ID
		if id == "" {
			id = "#" + strconv.Itoa(i)
		}
		switch {
		case rec.Start == nil:
			return nil, fmt.Errorf("%w: job %s: start", ErrMissingField, id)
		case rec.End == nil:
			return nil, fmt.Errorf("%w: job %s: end", ErrMissingField, id)
		case rec.Weight == nil:
			return nil, fmt.Errorf("%w: job %s: weight", ErrMissingField, id)
		}
		job, err := NewJob(id, *rec.Start, *rec.End, *rec.Weight)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
