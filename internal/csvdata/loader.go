// Package csvdata reads the daily temperature CSV into domain records.
package csvdata

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
)

// ErrDataLoad marks file-level failures: missing or unreadable input.
// Row-level parse failures never surface here; they are skipped and counted.
var ErrDataLoad = errors.New("load temperature data")

// Loader reads daily records from a CSV file with the columns
// date,max_temperature,min_temperature. Columns beyond the third are ignored.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a Loader for the given file path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Records reads the whole file. Malformed rows are skipped with a warning;
// the second return value is the skip count. Open and read failures return
// an error wrapping ErrDataLoad.
func (l *Loader) Records(ctx context.Context) ([]domain.DailyRecord, int, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate extra columns

	var records []domain.DailyRecord
	skipped := 0
	line := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, skipped, fmt.Errorf("%w: %v", ErrDataLoad, err)
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("%w: %v", ErrDataLoad, err)
		}
		line++

		// First row is the header.
		if line == 1 {
			continue
		}

		if len(row) < 3 {
			l.logger.Warn("skipping short row", "line", line, "fields", len(row))
			skipped++
			continue
		}

		rec, err := domain.ParseRecord(row[0], row[1], row[2])
		if err != nil {
			l.logger.Warn("skipping malformed row", "line", line, "error", err)
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}
