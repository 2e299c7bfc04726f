package budget

import (
	"errors"
	"time"

	"laboratorio_xpto/internal/domain/entities"
)

// PickerState is the step of the add-exam widget for schedulable exams.
type PickerState string

const (
	PickerIdle             PickerState = "idle"
	PickerFetchingNextDate PickerState = "fetching_next_date"
	PickerDateChosen       PickerState = "date_chosen"
	PickerFetchingTimes    PickerState = "fetching_times"
	PickerTimeChosen       PickerState = "time_chosen"
	PickerAddable          PickerState = "addable"
)

var (
	ErrNoAvailableDate = errors.New("no available date")
	ErrNoAvailableTime = errors.New("no available time")
	ErrUnknownSlot     = errors.New("slot not offered for date")
	ErrPickerState     = errors.New("slot picker not in expected state")
)

// SlotPicker walks Idle → FetchingNextDate → DateChosen → FetchingTimes →
// TimeChosen → Addable. Any failed or empty lookup drops back to Idle with
// Message set; choosing another exam restarts from FetchingNextDate.
type SlotPicker struct {
	State    PickerState     `json:"state"`
	ExamID   string          `json:"exam_id,omitempty"`
	Date     *time.Time      `json:"date,omitempty"`
	Options  []entities.Slot `json:"options,omitempty"`
	Selected *entities.Slot  `json:"selected,omitempty"`
	Message  string          `json:"message,omitempty"`
}

func NewSlotPicker() SlotPicker {
	return SlotPicker{State: PickerIdle}
}

func (p SlotPicker) ChooseExam(examID string) SlotPicker {
	return SlotPicker{State: PickerFetchingNextDate, ExamID: examID}
}

// ResolveNextDate records the answer of the next-available-date lookup.
func (p SlotPicker) ResolveNextDate(date time.Time, found bool, err error) (SlotPicker, error) {
	if p.State != PickerFetchingNextDate {
		return p, ErrPickerState
	}
	if err != nil {
		return p.fail("Não foi possível consultar a agenda. Tente novamente."), err
	}
	if !found {
		return p.fail("Não há datas disponíveis para este exame."), ErrNoAvailableDate
	}
	d := date
	p.Date = &d
	p.State = PickerDateChosen
	return p, nil
}

// ChooseDate starts the time lookup for date. Valid once an exam is chosen.
func (p SlotPicker) ChooseDate(date time.Time) (SlotPicker, error) {
	switch p.State {
	case PickerDateChosen, PickerTimeChosen, PickerAddable:
	default:
		return p, ErrPickerState
	}
	d := date
	p.Date = &d
	p.Options = nil
	p.Selected = nil
	p.State = PickerFetchingTimes
	return p, nil
}

// ResolveTimes records the slots offered for the chosen date and preselects
// the earliest one.
func (p SlotPicker) ResolveTimes(slots []entities.Slot, err error) (SlotPicker, error) {
	if p.State != PickerFetchingTimes {
		return p, ErrPickerState
	}
	if err != nil {
		return p.fail("Não foi possível consultar os horários. Tente novamente."), err
	}
	if len(slots) == 0 {
		return p.fail("Não há horários disponíveis para a data selecionada."), ErrNoAvailableTime
	}
	p.Options = append([]entities.Slot(nil), slots...)
	first := p.Options[0]
	p.Selected = &first
	p.State = PickerTimeChosen
	return p, nil
}

// ChooseTime confirms one of the offered slots, making the exam addable.
func (p SlotPicker) ChooseTime(slotID string) (SlotPicker, error) {
	if p.State != PickerTimeChosen && p.State != PickerAddable {
		return p, ErrPickerState
	}
	for _, s := range p.Options {
		if s.ID == slotID {
			chosen := s
			p.Selected = &chosen
			p.State = PickerAddable
			return p, nil
		}
	}
	return p, ErrUnknownSlot
}

// SlotFor returns the confirmed slot when the picker is addable for examID.
func (p SlotPicker) SlotFor(examID string) (entities.Slot, bool) {
	if p.State != PickerAddable || p.ExamID != examID || p.Selected == nil {
		return entities.Slot{}, false
	}
	return *p.Selected, true
}

func (p SlotPicker) fail(message string) SlotPicker {
	return SlotPicker{State: PickerIdle, Message: message}
}
