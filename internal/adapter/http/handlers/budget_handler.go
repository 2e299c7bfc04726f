package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	request "laboratorio_xpto/internal/adapter/http/dto/request"
	response "laboratorio_xpto/internal/adapter/http/dto/response"
	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BudgetHandler exposes the editing session of a budget header: one route per
// user action, each answering with the recomputed session.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// OpenSession opens an editing session for a new header.
func (h *BudgetHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	sess, err := h.usecase.OpenSession(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[budget][handler] open failed kind=%s err=%v", payload.Kind, err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(sess))
}

// OpenBudget opens an editing session for a saved budget.
func (h *BudgetHandler) OpenBudget(c *gin.Context) {
	var payload request.OpenBudgetRequest
	// The body is optional.
	_ = c.ShouldBindJSON(&payload)

	budgetID := c.Param("budget_id")
	sess, err := h.usecase.OpenBudget(c.Request.Context(), budgetID, payload.UserID)
	if err != nil {
		log.Printf("[budget][handler] open budget failed budget_id=%s err=%v", budgetID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(sess))
}

func (h *BudgetHandler) GetSession(c *gin.Context) {
	sess, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

// DiscardSession drops the editing state. The saved budget is untouched.
func (h *BudgetHandler) DiscardSession(c *gin.Context) {
	if err := h.usecase.DiscardSession(c.Request.Context(), c.Param("session_id")); err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) AddExam(c *gin.Context) {
	var payload request.AddExamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.AddExam(ctx, id, payload.ToInput())
	})
}

func (h *BudgetHandler) RemoveExam(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.RemoveExam(ctx, id, index)
	})
}

// ChangePlan switches insurer/plan and re-prices every exam.
func (h *BudgetHandler) ChangePlan(c *gin.Context) {
	var payload request.ChangePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.ChangePlan(ctx, id, payload.ToInput())
	})
}

func (h *BudgetHandler) ChangeDiscount(c *gin.Context) {
	var payload request.ChangeDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.ChangeDiscount(ctx, id, payload.ToInput())
	})
}

func (h *BudgetHandler) UpdateHeader(c *gin.Context) {
	var payload request.UpdateHeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.UpdateHeader(ctx, id, payload.ToInput())
	})
}

// AddPayment declares a payment. A payload with mp_payload is charged through Mercado Pago first.
func (h *BudgetHandler) AddPayment(c *gin.Context) {
	var payload request.AddPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.AddPayment(ctx, id, payload.ToInput())
	})
}

func (h *BudgetHandler) RemovePayment(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (budget.Session, error) {
		return h.usecase.RemovePayment(ctx, id, index)
	})
}

func (h *BudgetHandler) Save(c *gin.Context) {
	h.respond(c, h.usecase.Save)
}

// ConfirmOrder turns the budget into an order.
func (h *BudgetHandler) ConfirmOrder(c *gin.Context) {
	sessionID := c.Param("session_id")
	sess, order, err := h.usecase.ConfirmOrder(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[budget][handler] confirm failed session_id=%s err=%v", sessionID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.ConfirmOrderResponse{
		Order:   response.FromOrder(order),
		Session: response.FromSession(sess),
	})
}

func (h *BudgetHandler) Cancel(c *gin.Context) {
	h.respond(c, h.usecase.Cancel)
}

func (h *BudgetHandler) respond(c *gin.Context, run func(ctx context.Context, sessionID string) (budget.Session, error)) {
	sessionID := c.Param("session_id")
	sess, err := run(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[budget][handler] %s %s failed session_id=%s err=%v", c.Request.Method, c.FullPath(), sessionID, err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		writeError(c, errInvalidIndex)
		return 0, false
	}
	return index, true
}
