package holiday

import "time"

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matches reports whether the holiday applies on d. Non-recurring holidays
// match only their exact date; recurring ones match the stored month and day
// of every year.
func (h Holiday) Matches(d time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == d.Month() && h.Date.Day() == d.Day()
	}
	return h.Date.Year() == d.Year() && h.Date.Month() == d.Month() && h.Date.Day() == d.Day()
}
