package daterange

import (
	"errors"
	"time"
)

// MaxRangeDays is the largest span Validate accepts between start and end.
const MaxRangeDays = 730

var (
	ErrInvalidRange  = errors.New("start date cannot be after end date")
	ErrFutureEndDate = errors.New("end date cannot be in the future")
	ErrRangeTooLarge = errors.New("date range cannot exceed 2 years")
)

// Range is an inclusive pair of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Month time.Month
	Year  int
}

// DateOf strips the clock and zone from t, keeping only the calendar day.
// All dates produced by this package are midnight UTC so they compare with
// plain equality.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// Format renders a calendar date back to "YYYY-MM-DD".
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}

// daysSinceMonday returns 0 for Monday through 6 for Sunday.
func daysSinceMonday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// ResolvePreset maps a named range to concrete dates anchored at today.
// Unrecognized names fall back to last7days rather than erroring; callers
// that need strict handling should check the name against Presets first.
func ResolvePreset(name string, today time.Time) Range {
	today = DateOf(today)

	switch name {
	case "today":
		return Range{Start: today, End: today}
	case "yesterday":
		y := today.AddDate(0, 0, -1)
		return Range{Start: y, End: y}
	case "last30days":
		return Range{Start: today.AddDate(0, 0, -29), End: today}
	case "last90days":
		return Range{Start: today.AddDate(0, 0, -89), End: today}
	case "thisweek":
		return Range{Start: today.AddDate(0, 0, -daysSinceMonday(today)), End: today}
	case "lastweek":
		// Full Monday-Sunday week before the current one, regardless of
		// today's weekday.
		sunday := today.AddDate(0, 0, -(daysSinceMonday(today) + 1))
		return Range{Start: sunday.AddDate(0, 0, -6), End: sunday}
	case "thismonth":
		return Range{Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), End: today}
	case "lastmonth":
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastOfPrev := firstOfThis.AddDate(0, 0, -1)
		firstOfPrev := time.Date(lastOfPrev.Year(), lastOfPrev.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: firstOfPrev, End: lastOfPrev}
	case "thisyear":
		return Range{Start: time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC), End: today}
	case "lastyear":
		return Range{
			Start: time.Date(today.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(today.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	case "last7days":
		fallthrough
	default:
		return Range{Start: today.AddDate(0, 0, -6), End: today}
	}
}

// Presets lists the recognized preset names in display order.
func Presets() []string {
	return []string{
		"today", "yesterday",
		"last7days", "last30days", "last90days",
		"thisweek", "lastweek",
		"thismonth", "lastmonth",
		"thisyear", "lastyear",
	}
}

// Validate checks an explicit range against today. It returns
// ErrInvalidRange when start is after end, ErrFutureEndDate when end is
// past today, and ErrRangeTooLarge when the span exceeds MaxRangeDays.
func Validate(start, end, today time.Time) error {
	start, end, today = DateOf(start), DateOf(end), DateOf(today)

	if start.After(end) {
		return ErrInvalidRange
	}
	if end.After(today) {
		return ErrFutureEndDate
	}
	if SpanDays(start, end) > MaxRangeDays {
		return ErrRangeTooLarge
	}
	return nil
}

// SpanDays returns the number of days between two dates, end exclusive of
// start (same-day spans are 0). Both dates are midnight UTC so the division
// is exact.
func SpanDays(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours() / 24)
}

// MonthBounds returns the first and last day of a month. The last day is
// computed as the first of the following month minus one day, which handles
// the December to January rollover and leap Februaries.
func MonthBounds(month time.Month, year int) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return first, last
}

// CenteredMonths produces count consecutive months centered on the given
// month, biased toward earlier months when count is even. Month arithmetic
// goes through time.Date normalization so year boundaries roll over
// correctly.
func CenteredMonths(month time.Month, year, count int) []YearMonth {
	offset := -(count / 2)
	months := make([]YearMonth, 0, count)
	for i := 0; i < count; i++ {
		d := time.Date(year, month+time.Month(offset+i), 1, 0, 0, 0, 0, time.UTC)
		months = append(months, YearMonth{Month: d.Month(), Year: d.Year()})
	}
	return months
}

// Days enumerates every date in the range, inclusive on both ends.
func (r Range) Days() []time.Time {
	start, end := DateOf(r.Start), DateOf(r.End)
	days := make([]time.Time, 0, SpanDays(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(DateOf(r.Start)) && !d.After(DateOf(r.End))
}
