package domain

import "sort"

// MonthlySummary holds the aggregated statistics for one (year, month) pair.
// DailyRecords is ordered ascending by day; it feeds the per-cell line chart.
type MonthlySummary struct {
	Year         int
	Month        int
	MaxTemp      float64
	MinTemp      float64
	AvgMax       float64
	AvgMin       float64
	DailyRecords []DailyRecord
}

// Dataset is the immutable output of one aggregation run: the summaries in
// render order, the distinct years present, and the color scale derived from
// the configured temperature domain.
type Dataset struct {
	Summaries []MonthlySummary
	Years     []int
	Scale     ColorScale
}

// SelectYearRange filters records to startYear <= Year <= endYear inclusive
// and returns the distinct years present in the result, sorted ascending.
// An empty selection is valid and yields empty slices, not an error.
func SelectYearRange(records []DailyRecord, startYear, endYear int) ([]DailyRecord, []int) {
	var selected []DailyRecord
	seen := make(map[int]bool)
	for _, r := range records {
		if r.Year < startYear || r.Year > endYear {
			continue
		}
		selected = append(selected, r)
		seen[r.Year] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	return selected, years
}

// Aggregate groups records by (year, month) and computes one MonthlySummary
// per non-empty group. Output order is year-major, month-minor; months with
// no records emit nothing. The result is deterministic for identical input.
func Aggregate(records []DailyRecord, years []int) []MonthlySummary {
	// Explicit two-level grouping built in a single pass.
	byYearMonth := make(map[int][12][]DailyRecord)
	for _, r := range records {
		months := byYearMonth[r.Year]
		months[r.Month] = append(months[r.Month], r)
		byYearMonth[r.Year] = months
	}

	var summaries []MonthlySummary
	for _, year := range years {
		months := byYearMonth[year]
		for month := 0; month < 12; month++ {
			group := months[month]
			if len(group) == 0 {
				continue
			}
			summaries = append(summaries, summarize(year, month, group))
		}
	}
	return summaries
}

func summarize(year, month int, group []DailyRecord) MonthlySummary {
	daily := make([]DailyRecord, len(group))
	copy(daily, group)
	sort.Slice(daily, func(i, j int) bool { return daily[i].Day < daily[j].Day })

	s := MonthlySummary{
		Year:         year,
		Month:        month,
		MaxTemp:      daily[0].MaxTemp,
		MinTemp:      daily[0].MinTemp,
		DailyRecords: daily,
	}

	var sumMax, sumMin float64
	for _, r := range daily {
		if r.MaxTemp > s.MaxTemp {
			s.MaxTemp = r.MaxTemp
		}
		if r.MinTemp < s.MinTemp {
			s.MinTemp = r.MinTemp
		}
		sumMax += r.MaxTemp
		sumMin += r.MinTemp
	}
	s.AvgMax = sumMax / float64(len(daily))
	s.AvgMin = sumMin / float64(len(daily))

	return s
}
