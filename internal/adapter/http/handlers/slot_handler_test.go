package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "laboratorio_xpto/internal/adapter/http/dto/response"
	"laboratorio_xpto/internal/adapter/http/handlers/mocks"
	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSlotRouter(uc usecase.ISlotUseCase) *gin.Engine {
	h := NewSlotHandler(uc)
	r := gin.New()
	r.POST("/v1/sessions/:session_id/slots/exam", h.ChooseExam)
	r.POST("/v1/sessions/:session_id/slots/date", h.ChooseDate)
	r.POST("/v1/sessions/:session_id/slots/time", h.ChooseTime)
	r.GET("/v1/sessions/:session_id/slots/dates", h.CandidateDates)
	return r
}

func TestSlotHandler_ChooseExam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("picker jumps to first slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		r := newSlotRouter(uc)

		day := time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC)
		slot := entities.Slot{ID: "slot-1", StartsAt: day.Add(8 * time.Hour)}
		sess := sessionFixture("s-1")
		sess.Picker = budget.SlotPicker{
			State:    budget.PickerAddable,
			ExamID:   "e1",
			Date:     &day,
			Options:  []entities.Slot{slot},
			Selected: &slot,
		}
		uc.EXPECT().ChooseExam(gomock.Any(), "s-1", "e1").Return(sess, nil)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/slots/exam", `{"exam_id":"e1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.SessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Picker.Date != "2026-04-07" || body.Picker.Selected == nil || body.Picker.Selected.ID != "slot-1" {
			t.Fatalf("unexpected picker %+v", body.Picker)
		}
	})

	t.Run("no date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		r := newSlotRouter(uc)

		uc.EXPECT().ChooseExam(gomock.Any(), "s-1", "e1").Return(budget.Session{}, budget.ErrNoAvailableDate)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/slots/exam", `{"exam_id":"e1"}`)
		if w.Code != http.StatusUnprocessableEntity || decodeError(t, w).Code != "NO_AVAILABLE_DATE" {
			t.Fatalf("expected 422 NO_AVAILABLE_DATE, got %d", w.Code)
		}
	})

	t.Run("budget flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		r := newSlotRouter(uc)

		uc.EXPECT().ChooseExam(gomock.Any(), "s-1", "e1").Return(budget.Session{}, usecase.ErrSchedulingUnsupported)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/slots/exam", `{"exam_id":"e1"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestSlotHandler_ChooseDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		r := newSlotRouter(uc)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/slots/date", `{"date":"07/04/2026"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("picker state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		r := newSlotRouter(uc)

		want := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ChooseDate(gomock.Any(), "s-1", want).Return(budget.Session{}, budget.ErrPickerState)

		w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/slots/date", `{"date":"2026-04-08"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSlotHandler_ChooseTime(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISlotUseCase(ctrl)
	r := newSlotRouter(uc)

	uc.EXPECT().ChooseTime(gomock.Any(), "s-1", "slot-9").Return(budget.Session{}, budget.ErrUnknownSlot)

	w := doJSON(r, http.MethodPost, "/v1/sessions/s-1/slots/time", `{"slot_id":"slot-9"}`)
	if w.Code != http.StatusUnprocessableEntity || decodeError(t, w).Code != "UNKNOWN_SLOT" {
		t.Fatalf("expected 422 UNKNOWN_SLOT, got %d", w.Code)
	}
}

func TestSlotHandler_CandidateDates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISlotUseCase(ctrl)
	r := newSlotRouter(uc)

	uc.EXPECT().CandidateDates(gomock.Any(), "s-1", "e1").Return([]time.Time{
		time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/sessions/s-1/slots/dates?exam_id=e1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body response.DatesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Dates) != 2 || body.Dates[1] != "2026-04-09" {
		t.Fatalf("unexpected dates %v", body.Dates)
	}
}
