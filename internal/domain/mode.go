package domain

import "fmt"

// DisplayMode selects which monthly statistic drives cell coloring.
type DisplayMode int

const (
	// ShowMax colors each cell by the month's average daily maximum.
	ShowMax DisplayMode = iota
	// ShowMin colors each cell by the month's average daily minimum.
	ShowMin
)

// String returns the wire name of the mode: "max" or "min".
func (m DisplayMode) String() string {
	if m == ShowMin {
		return "min"
	}
	return "max"
}

// Other returns the opposite mode.
func (m DisplayMode) Other() DisplayMode {
	if m == ShowMax {
		return ShowMin
	}
	return ShowMax
}

// Value picks the statistic this mode visualizes from a summary.
func (m DisplayMode) Value(s MonthlySummary) float64 {
	if m == ShowMin {
		return s.AvgMin
	}
	return s.AvgMax
}

// ParseDisplayMode parses "max" or "min".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "max":
		return ShowMax, nil
	case "min":
		return ShowMin, nil
	default:
		return ShowMax, fmt.Errorf("unknown display mode %q", s)
	}
}
