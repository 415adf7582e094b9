// Package domain models daily temperature observations and the monthly
// statistics derived from them.
//
// # Data Source
//
// Input is the Hong Kong Observatory daily temperature dataset
// (temperature_daily.csv): one row per day with the date and the day's
// maximum and minimum air temperature in degrees Celsius.
//
// CSV conventions:
//
//	date,max_temperature,min_temperature
//	1997-07-01,32.1,28.0
//
//	Dates are ISO YYYY-MM-DD and are interpreted in UTC. Extra columns
//	after the third are ignored. Temperatures are plain decimals.
//
// # Aggregation
//
// Records are grouped by (year, month). Each non-empty group produces one
// [MonthlySummary] carrying the month's extreme temperatures (exact max of
// the daily maxima, exact min of the daily minima), the arithmetic means of
// both daily series, and the month's records ordered by day so a line chart
// can be drawn inside the matrix cell. Months with no records produce no
// summary; the output is sparse and ordered year-major, month-minor.
//
// No rounding is applied during aggregation. Formatting belongs to the
// rendering layer.
//
// # Parse Failure Policy
//
// [ParseRecord] is strict: a malformed date or a non-numeric temperature
// fails the record with an error wrapping [ErrParse], never a silent zero.
// The CSV loading layer skips failed rows and counts them; only file-level
// I/O failures abort a load.
package domain
