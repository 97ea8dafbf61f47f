package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)

	// List returns all holidays ordered by date.
	List(ctx context.Context) ([]Holiday, error)

	Update(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, id string) error

	// FindMatching returns the holiday applying on the date, or nil when the
	// date is not a holiday. An exact-date match wins over a recurring
	// month/day match; remaining ties break on (date, id) so the result is
	// stable.
	FindMatching(ctx context.Context, date time.Time) (*Holiday, error)
}
