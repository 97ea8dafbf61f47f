package holiday

import "context"

type HolidayService interface {
	List(ctx context.Context) ([]HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
