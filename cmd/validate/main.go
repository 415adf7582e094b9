// Command validate checks a daily temperature CSV for integrity before it is
// fed to the chart: every row parses, per-row min never exceeds max, no date
// appears twice, and the configured year window actually has coverage.
//
// Usage:
//
//	go run ./cmd/validate -data data/temperature_daily.csv -start-year 2008 -end-year 2017
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/csvdata"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataFile := flag.String("data", "data/temperature_daily.csv", "path to the daily temperature CSV")
	startYear := flag.Int("start-year", 2008, "first year of the render window")
	endYear := flag.Int("end-year", 2017, "last year of the render window (inclusive)")
	flag.Parse()

	if code := run(*dataFile, *startYear, *endYear); code != 0 {
		os.Exit(code)
	}
}

func run(dataFile string, startYear, endYear int) int {
	fmt.Println("=== Temperature Dataset Validation ===")
	fmt.Println()

	loader := csvdata.NewLoader(dataFile, slog.New(slog.DiscardHandler))
	records, skipped, err := loader.Records(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateParsing(records, skipped),
		validateRowInvariants(records),
		validateDuplicates(records),
		validateCoverage(records, startYear, endYear),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       - %s\n", e)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("validation FAILED")
		return 1
	}
	fmt.Printf("validation passed: %d rows, %d skipped\n", len(records), skipped)
	return 0
}

func validateParsing(records []domain.DailyRecord, skipped int) *phase {
	p := &phase{name: "row parsing"}
	if len(records) == 0 {
		p.errorf("no parseable rows in the file")
	}
	if skipped > 0 {
		p.errorf("%d malformed rows were skipped", skipped)
	}
	return p
}

func validateRowInvariants(records []domain.DailyRecord) *phase {
	p := &phase{name: "per-row min <= max"}
	for _, r := range records {
		if r.MinTemp > r.MaxTemp {
			p.errorf("%s: min %.1f exceeds max %.1f", r.Date.Format("2006-01-02"), r.MinTemp, r.MaxTemp)
		}
	}
	return p
}

func validateDuplicates(records []domain.DailyRecord) *phase {
	p := &phase{name: "no duplicate dates"}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		if seen[key] {
			p.errorf("date %s appears more than once", key)
		}
		seen[key] = true
	}
	return p
}

func validateCoverage(records []domain.DailyRecord, startYear, endYear int) *phase {
	p := &phase{name: fmt.Sprintf("coverage of %d-%d", startYear, endYear)}

	selected, years := domain.SelectYearRange(records, startYear, endYear)
	if len(years) == 0 {
		p.errorf("window selects zero years; the chart would be empty")
		return p
	}

	summaries := domain.Aggregate(selected, years)
	monthsByYear := make(map[int]int)
	for _, s := range summaries {
		monthsByYear[s.Year]++
	}
	for _, y := range years {
		if monthsByYear[y] < 12 {
			p.errorf("year %d has only %d months with data", y, monthsByYear[y])
		}
	}
	return p
}
