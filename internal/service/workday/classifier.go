package workday

import (
	"context"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/holiday"
)

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Classifier answers working-day questions against the stored holiday set.
// It owns only the matching rule; storage comes through the injected
// repository.
type Classifier struct {
	holidays holiday.HolidayRepository
}

func NewClassifier(holidays holiday.HolidayRepository) *Classifier {
	return &Classifier{holidays: holidays}
}

// MatchingHoliday returns the holiday applying on d, or nil. Exact-date
// matches win over recurring month/day matches.
func (c *Classifier) MatchingHoliday(ctx context.Context, d time.Time) (*holiday.Holiday, error) {
	return c.holidays.FindMatching(ctx, d)
}

// IsHoliday reports whether d matches a stored holiday, recurring ones by
// month and day with the year ignored.
func (c *Classifier) IsHoliday(ctx context.Context, d time.Time) (bool, error) {
	h, err := c.holidays.FindMatching(ctx, d)
	if err != nil {
		return false, err
	}
	return h != nil, nil
}

// IsWorkingDay reports whether d is neither a weekend day nor a holiday.
func (c *Classifier) IsWorkingDay(ctx context.Context, d time.Time) (bool, error) {
	if IsWeekend(d) {
		return false, nil
	}
	isHoliday, err := c.IsHoliday(ctx, d)
	if err != nil {
		return false, err
	}
	return !isHoliday, nil
}

// NonWorkingReason returns a human-readable reason when d is not a working
// day: the weekday name for weekends, the holiday name otherwise. ok is
// false on working days.
func (c *Classifier) NonWorkingReason(ctx context.Context, d time.Time) (reason string, ok bool, err error) {
	if IsWeekend(d) {
		return d.Weekday().String(), true, nil
	}
	h, err := c.holidays.FindMatching(ctx, d)
	if err != nil {
		return "", false, err
	}
	if h != nil {
		return h.Name, true, nil
	}
	return "", false, nil
}
