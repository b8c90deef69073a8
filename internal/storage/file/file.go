// Package file reads city trip histories from CSV or XLSX files in a directory.
package file

import (
	"fmt"
	"path/filepath"

	"bikeshare-explorer/internal/domain"
)

// Format is the on-disk file format of a city dataset.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	return f == FormatCSV || f == FormatXLSX
}

// Paths maps each city to its backing file.
type Paths map[domain.City]string

// DefaultPaths returns <dir>/<slug>.<format> for every supported city,
// e.g. data/new_york_city.csv.
func DefaultPaths(dir string, format Format) Paths {
	paths := make(Paths, len(domain.Cities))
	for _, c := range domain.Cities {
		paths[c] = filepath.Join(dir, fmt.Sprintf("%s.%s", c.Slug(), format))
	}
	return paths
}
