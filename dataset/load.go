package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Parse decodes problems from r. name is used for problems that do not
// carry their own (bare YAML lists and CSV files).
func Parse(r io.Reader, f Format, name string) ([]Problem, error) {
	switch f {
	case FormatYAML, FormatJSON:
		return parseYAML(r, name)
	case FormatCSV:
		return parseCSV(r, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Load reads one problem file. The format comes from the extension and the
// default problem name is the file name without it.
func Load(path string) ([]Problem, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("dataset: %s is a directory", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer file.Close()

	base := filepath.Base(path)
	problems, err := Parse(file, f, strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return problems, nil
}
