package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse marks record-level parse failures. Callers can match it with
// errors.Is to distinguish bad rows from I/O errors.
var ErrParse = errors.New("parse record")

// dateLayout is the ISO date format used by the dataset.
const dateLayout = "2006-01-02"

// DailyRecord is one day's observation after type conversion and date
// decomposition. Month is zero-based (January is 0) to match the row index
// of the rendered matrix.
type DailyRecord struct {
	Date    time.Time
	Year    int
	Month   int
	Day     int
	MaxTemp float64
	MinTemp float64
}

// ParseRecord converts one raw CSV row into a DailyRecord. The date must be
// YYYY-MM-DD and both temperatures must parse as decimals; anything else
// fails with an error wrapping ErrParse. Dates are pinned to UTC so the
// derived year/month/day always match the input string.
func ParseRecord(dateStr, maxStr, minStr string) (DailyRecord, error) {
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateStr), time.UTC)
	if err != nil {
		return DailyRecord{}, fmt.Errorf("%w: invalid date %q", ErrParse, dateStr)
	}

	maxTemp, err := parseTemperature(maxStr)
	if err != nil {
		return DailyRecord{}, err
	}
	minTemp, err := parseTemperature(minStr)
	if err != nil {
		return DailyRecord{}, err
	}

	return DailyRecord{
		Date:    date,
		Year:    date.Year(),
		Month:   int(date.Month()) - 1,
		Day:     date.Day(),
		MaxTemp: maxTemp,
		MinTemp: minTemp,
	}, nil
}

func parseTemperature(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid temperature %q", ErrParse, s)
	}
	return v, nil
}
