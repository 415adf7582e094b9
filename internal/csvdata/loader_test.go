package csvdata_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/csvdata"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temperature_daily.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Records(t *testing.T) {
	path := writeFixture(t, `date,max_temperature,min_temperature
2015-01-15,20.0,10.0
2015-01-16,22.0,11.0
`)

	loader := csvdata.NewLoader(path, slog.Default())
	records, skipped, err := loader.Records(context.Background())

	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, 2015, records[0].Year)
	assert.Equal(t, 0, records[0].Month)
	assert.Equal(t, 15, records[0].Day)
	assert.Equal(t, 20.0, records[0].MaxTemp)
	assert.Equal(t, 10.0, records[0].MinTemp)
}

func TestLoader_ExtraColumnsIgnored(t *testing.T) {
	path := writeFixture(t, `date,max_temperature,min_temperature,station
2010-06-01,31.4,26.0,HKO
`)

	loader := csvdata.NewLoader(path, slog.Default())
	records, skipped, err := loader.Records(context.Background())

	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, 31.4, records[0].MaxTemp)
}

func TestLoader_SkipsMalformedRows(t *testing.T) {
	path := writeFixture(t, `date,max_temperature,min_temperature
2015-01-15,20.0,10.0
not-a-date,20.0,10.0
2015-01-17,warm,10.0
2015-01-18
2015-01-19,23.0,12.0
`)

	loader := csvdata.NewLoader(path, slog.Default())
	records, skipped, err := loader.Records(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, 15, records[0].Day)
	assert.Equal(t, 19, records[1].Day)
}

func TestLoader_HeaderOnly(t *testing.T) {
	path := writeFixture(t, "date,max_temperature,min_temperature\n")

	loader := csvdata.NewLoader(path, slog.Default())
	records, skipped, err := loader.Records(context.Background())

	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, records)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := csvdata.NewLoader(filepath.Join(t.TempDir(), "absent.csv"), slog.Default())
	_, _, err := loader.Records(context.Background())

	require.ErrorIs(t, err, csvdata.ErrDataLoad)
}

func TestLoader_CancelledContext(t *testing.T) {
	path := writeFixture(t, "date,max_temperature,min_temperature\n2015-01-15,20.0,10.0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := csvdata.NewLoader(path, slog.Default())
	_, _, err := loader.Records(ctx)

	require.ErrorIs(t, err, csvdata.ErrDataLoad)
}
