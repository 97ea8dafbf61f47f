package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/holiday"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
)

type holidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *holidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}
	return responses, nil
}

func (s *holidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toHolidayResponse(h), nil
}

func (s *holidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := daterange.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("invalid holiday date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toHolidayResponse(created), nil
}

func (s *holidayServiceImpl) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := daterange.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("invalid holiday date: %w", err)
	}

	h.Name = req.Name
	h.Date = date
	h.IsRecurring = req.IsRecurring
	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return toHolidayResponse(updated), nil
}

func (s *holidayServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        daterange.Format(h.Date),
		IsRecurring: h.IsRecurring,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   h.UpdatedAt.Format(time.RFC3339),
	}
}
