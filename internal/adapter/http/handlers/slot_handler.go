package handlers

import (
	"context"
	"log"
	"net/http"

	request "laboratorio_xpto/internal/adapter/http/dto/request"
	response "laboratorio_xpto/internal/adapter/http/dto/response"
	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SlotHandler drives the slot picker of a scheduling session.
type SlotHandler struct {
	usecase usecase.ISlotUseCase
}

func NewSlotHandler(uc usecase.ISlotUseCase) *SlotHandler {
	return &SlotHandler{usecase: uc}
}

// ChooseExam picks an exam and jumps to its earliest free slot.
func (h *SlotHandler) ChooseExam(c *gin.Context) {
	var payload request.ChooseExamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.ChooseExam(ctx, id, payload.ExamID)
	})
}

func (h *SlotHandler) ChooseDate(c *gin.Context) {
	var payload request.ChooseDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	date, err := payload.ParseDate()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.ChooseDate(ctx, id, date)
	})
}

func (h *SlotHandler) ChooseTime(c *gin.Context) {
	var payload request.ChooseTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.ChooseTime(ctx, id, payload.SlotID)
	})
}

func (h *SlotHandler) CandidateDates(c *gin.Context) {
	sessionID := c.Param("session_id")
	dates, err := h.usecase.CandidateDates(c.Request.Context(), sessionID, c.Query("exam_id"))
	if err != nil {
		log.Printf("[slot][handler] dates failed session_id=%s err=%v", sessionID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDates(dates))
}

// respond answers with the session even when the lookup failed and the picker
// fell back to idle: the client shows the picker message.
func (h *SlotHandler) respond(c *gin.Context, run func(ctx context.Context, sessionID string) (budget.Session, error)) {
	sessionID := c.Param("session_id")
	sess, err := run(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[slot][handler] %s failed session_id=%s err=%v", c.FullPath(), sessionID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}
