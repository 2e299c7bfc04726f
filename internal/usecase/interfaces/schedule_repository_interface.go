package interfaces

import (
	"context"
	"laboratorio_xpto/internal/domain/entities"
	"time"
)

// IScheduleRepository queries bookable collection slots.
//
// Dates are returned truncated to the day in UTC.

type IScheduleRepository interface {
	NextAvailableDate(ctx context.Context, q entities.SlotQuery, from, until time.Time) (time.Time, bool, error)
	AvailableDates(ctx context.Context, q entities.SlotQuery, from, until time.Time) ([]time.Time, error)
	AvailableTimeSlots(ctx context.Context, q entities.SlotQuery, date time.Time) ([]entities.Slot, error)
}
