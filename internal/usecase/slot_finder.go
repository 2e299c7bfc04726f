package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"
)

const defaultSlotSearchHorizon = 60 * 24 * time.Hour

var ErrInvalidSlotQuery = errors.New("invalid slot query")

// SlotFinder discovers collection dates and times for schedulable exams.
//
// Searches start today and stop at the horizon; nothing past it is offered.
type SlotFinder struct {
	repo    interfaces.IScheduleRepository
	horizon time.Duration
	clock   func() time.Time
}

func NewSlotFinder(repo interfaces.IScheduleRepository, horizon time.Duration) *SlotFinder {
	if horizon <= 0 {
		horizon = defaultSlotSearchHorizon
	}
	return &SlotFinder{repo: repo, horizon: horizon, clock: time.Now}
}

func normalizeSlotQuery(q entities.SlotQuery) (entities.SlotQuery, error) {
	q.InsurerID = strings.TrimSpace(q.InsurerID)
	q.PlanID = strings.TrimSpace(q.PlanID)
	q.UnitID = strings.TrimSpace(q.UnitID)
	q.ExamID = strings.TrimSpace(q.ExamID)
	if q.InsurerID == "" || q.PlanID == "" || q.UnitID == "" || q.ExamID == "" {
		return q, ErrInvalidSlotQuery
	}
	return q, nil
}

func (f *SlotFinder) window() (time.Time, time.Time) {
	from := f.clock().UTC()
	return from, from.Add(f.horizon)
}

// NextAvailableDate returns the nearest date with capacity, or found=false
// when nothing is bookable within the horizon.
func (f *SlotFinder) NextAvailableDate(ctx context.Context, q entities.SlotQuery) (time.Time, bool, error) {
	q, err := normalizeSlotQuery(q)
	if err != nil {
		return time.Time{}, false, err
	}
	from, until := f.window()
	return f.repo.NextAvailableDate(ctx, q, from, until)
}

// CandidateDates lists every date with capacity within the horizon.
func (f *SlotFinder) CandidateDates(ctx context.Context, q entities.SlotQuery) ([]time.Time, error) {
	q, err := normalizeSlotQuery(q)
	if err != nil {
		return nil, err
	}
	from, until := f.window()
	return f.repo.AvailableDates(ctx, q, from, until)
}

// AvailableTimes lists the bookable slots of one date, earliest first. Slots
// already in the past are not offered.
func (f *SlotFinder) AvailableTimes(ctx context.Context, q entities.SlotQuery, date time.Time) ([]entities.Slot, error) {
	q, err := normalizeSlotQuery(q)
	if err != nil {
		return nil, err
	}
	slots, err := f.repo.AvailableTimeSlots(ctx, q, date)
	if err != nil {
		return nil, err
	}
	now := f.clock()
	out := make([]entities.Slot, 0, len(slots))
	for _, s := range slots {
		if s.StartsAt.Before(now) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Walk drives picker from FetchingNextDate to TimeChosen, falling back to the
// earliest available date. Failures leave the picker Idle with a message.
func (f *SlotFinder) Walk(ctx context.Context, picker budget.SlotPicker, q entities.SlotQuery) (budget.SlotPicker, error) {
	date, found, err := f.NextAvailableDate(ctx, q)
	picker, err = picker.ResolveNextDate(date, found, err)
	if err != nil {
		return picker, err
	}
	return f.LoadTimes(ctx, picker, q, date)
}

// LoadTimes moves picker through FetchingTimes for date.
func (f *SlotFinder) LoadTimes(ctx context.Context, picker budget.SlotPicker, q entities.SlotQuery, date time.Time) (budget.SlotPicker, error) {
	picker, err := picker.ChooseDate(date)
	if err != nil {
		return picker, err
	}
	slots, err := f.AvailableTimes(ctx, q, date)
	return picker.ResolveTimes(slots, err)
}
