package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase/interfaces"
)

// ISlotUseCase drives the add-exam widget for schedulable exams.

type ISlotUseCase interface {
	ChooseExam(ctx context.Context, sessionID, examID string) (budget.Session, error)
	ChooseDate(ctx context.Context, sessionID string, date time.Time) (budget.Session, error)
	ChooseTime(ctx context.Context, sessionID, slotID string) (budget.Session, error)
	CandidateDates(ctx context.Context, sessionID, examID string) ([]time.Time, error)
}

type SlotUseCase struct {
	sessions sessionRunner
	finder   *SlotFinder
	catalog  interfaces.IExamCatalog
}

var _ ISlotUseCase = (*SlotUseCase)(nil)

func NewSlotUseCase(store interfaces.ISessionStore, finder *SlotFinder, catalog interfaces.IExamCatalog) *SlotUseCase {
	return &SlotUseCase{
		sessions: sessionRunner{store: store, clock: time.Now},
		finder:   finder,
		catalog:  catalog,
	}
}

func slotQuery(h entities.Header, examID string) entities.SlotQuery {
	return entities.SlotQuery{InsurerID: h.InsurerID, PlanID: h.PlanID, UnitID: h.UnitID, ExamID: examID}
}

// keepPicker saves the picker even when the lookup failed, so the client sees
// the Idle state and its message. The error is still returned.
func (u *SlotUseCase) keepPicker(ctx context.Context, sess budget.Session, picker budget.SlotPicker, lookupErr error) (budget.Session, error) {
	sess.Picker = picker
	sess.UpdatedAt = u.sessions.clock().UTC()
	if err := u.sessions.store.Save(ctx, sess); err != nil {
		return budget.Session{}, err
	}
	return sess, lookupErr
}

func (u *SlotUseCase) withLockedSession(ctx context.Context, sessionID string, fn func(sess budget.Session) (budget.Session, error)) (budget.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return budget.Session{}, ErrInvalidSessionID
	}
	release, err := u.sessions.lock(ctx, sessionID)
	if err != nil {
		return budget.Session{}, err
	}
	defer release()
	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return budget.Session{}, err
	}
	if !sess.State.Editable() {
		return budget.Session{}, budget.ErrNotEditable
	}
	return fn(sess)
}

// ChooseExam restarts the picker for examID and walks it to the earliest
// available date and its times.
func (u *SlotUseCase) ChooseExam(ctx context.Context, sessionID, examID string) (budget.Session, error) {
	examID = strings.TrimSpace(examID)
	if examID == "" {
		return budget.Session{}, ErrInvalidExam
	}
	return u.withLockedSession(ctx, sessionID, func(sess budget.Session) (budget.Session, error) {
		if !sess.State.Header.Kind.SupportsScheduling() {
			return budget.Session{}, ErrSchedulingUnsupported
		}
		if budget.HasExam(sess.State.Items, examID) {
			return budget.Session{}, budget.ErrAlreadyAdded
		}
		requires, err := u.catalog.RequiresScheduling(ctx, examID)
		if err != nil {
			return budget.Session{}, lookupFailed("requires scheduling", err)
		}
		if !requires {
			return budget.Session{}, ErrSchedulingNotRequired
		}

		picker := sess.Picker.ChooseExam(examID)
		picker, err = u.finder.Walk(ctx, picker, slotQuery(sess.State.Header, examID))
		if err != nil {
			log.Printf("[slot][usecase] walk failed session_id=%s exam_id=%s err=%v", sess.ID, examID, err)
		}
		return u.keepPicker(ctx, sess, picker, err)
	})
}

func (u *SlotUseCase) ChooseDate(ctx context.Context, sessionID string, date time.Time) (budget.Session, error) {
	return u.withLockedSession(ctx, sessionID, func(sess budget.Session) (budget.Session, error) {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		picker, err := u.finder.LoadTimes(ctx, sess.Picker, slotQuery(sess.State.Header, sess.Picker.ExamID), day)
		if errors.Is(err, budget.ErrPickerState) {
			return budget.Session{}, err
		}
		if err != nil {
			log.Printf("[slot][usecase] times failed session_id=%s exam_id=%s date=%s err=%v", sess.ID, sess.Picker.ExamID, day.Format(time.DateOnly), err)
		}
		return u.keepPicker(ctx, sess, picker, err)
	})
}

func (u *SlotUseCase) ChooseTime(ctx context.Context, sessionID, slotID string) (budget.Session, error) {
	return u.withLockedSession(ctx, sessionID, func(sess budget.Session) (budget.Session, error) {
		picker, err := sess.Picker.ChooseTime(strings.TrimSpace(slotID))
		if err != nil {
			return budget.Session{}, err
		}
		return u.keepPicker(ctx, sess, picker, nil)
	})
}

// CandidateDates lists the dates offered by the date selector. It does not
// touch the picker.
func (u *SlotUseCase) CandidateDates(ctx context.Context, sessionID, examID string) ([]time.Time, error) {
	sess, err := u.sessions.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	examID = strings.TrimSpace(examID)
	if examID == "" {
		examID = sess.Picker.ExamID
	}
	if examID == "" {
		return nil, ErrInvalidExam
	}
	dates, err := u.finder.CandidateDates(ctx, slotQuery(sess.State.Header, examID))
	if err != nil {
		return nil, lookupFailed("candidate dates", err)
	}
	return dates, nil
}
