package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// XLSXSource implements storage.RecordSource over one workbook per city.
// Rows are read from the first sheet; the first row is the header.
type XLSXSource struct {
	paths Paths
}

// NewXLSXSource creates an XLSX source for the given city paths.
func NewXLSXSource(paths Paths) *XLSXSource {
	return &XLSXSource{paths: paths}
}

// Compile-time interface check.
var _ storage.RecordSource = (*XLSXSource)(nil)

// ReadDataset reads the first sheet of the city's workbook.
func (s *XLSXSource) ReadDataset(ctx context.Context, city domain.City) (*storage.Dataset, error) {
	path, ok := s.paths[city]
	if !ok {
		return nil, fmt.Errorf("%w: no xlsx path for %s", storage.ErrNotFound, city)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook %s has no sheets", storage.ErrInvalidInput, path)
	}

	// Raw values keep date cells as serial numbers instead of their display format.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", storage.ErrInvalidInput, sheets[0])
	}

	// GetRows trims trailing empty cells; pad so every row matches the header.
	width := len(rows[0])
	ds := &storage.Dataset{Columns: rows[0], Rows: make([][]string, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		ds.Rows = append(ds.Rows, row)
	}

	if err := convertDateSerials(ds, date1904(f)); err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return ds, nil
}

// timeColumns are converted from Excel date serials to storage.TimestampLayout text.
var timeColumns = map[string]bool{
	domain.ColumnStartTime: true,
	domain.ColumnEndTime:   true,
}

// convertDateSerials rewrites numeric cells in the time columns as timestamps.
// Text cells are left for the loader to parse.
func convertDateSerials(ds *storage.Dataset, use1904 bool) error {
	for col, name := range ds.Columns {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if !timeColumns[key] {
			continue
		}
		for i, row := range ds.Rows {
			serial, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				continue
			}
			ts, err := excelize.ExcelDateToTime(serial, use1904)
			if err != nil {
				return fmt.Errorf("row %d %s: %w", i+1, name, err)
			}
			row[col] = ts.Format(storage.TimestampLayout)
		}
	}
	return nil
}

func date1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
