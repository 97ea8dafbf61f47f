package daterange

import "time"

// MonthGrid lays a month out as Monday-aligned weeks. Each week has exactly
// seven slots; slots before day 1 and after the last day are nil.
func MonthGrid(month time.Month, year int) [][]*time.Time {
	first, last := MonthBounds(month, year)

	var weeks [][]*time.Time
	week := make([]*time.Time, 0, 7)

	for i := 0; i < daysSinceMonday(first); i++ {
		week = append(week, nil)
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := d
		week = append(week, &day)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]*time.Time, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		weeks = append(weeks, week)
	}

	return weeks
}
