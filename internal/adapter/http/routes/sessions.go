package routes

import (
	"net/http"

	"laboratorio_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathSessions = "/sessions"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addSessionRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, slotHandler *handlers.SlotHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", budgetHandler.OpenSession)
		sessions.POST("/budgets/:budget_id", budgetHandler.OpenBudget)
		sessions.GET("/:session_id", budgetHandler.GetSession)
		sessions.DELETE("/:session_id", budgetHandler.DiscardSession)

		sessions.PUT("/:session_id/header", budgetHandler.UpdateHeader)
		sessions.PUT("/:session_id/plan", budgetHandler.ChangePlan)
		sessions.PUT("/:session_id/discount", budgetHandler.ChangeDiscount)

		sessions.POST("/:session_id/exams", budgetHandler.AddExam)
		sessions.DELETE("/:session_id/exams/:index", budgetHandler.RemoveExam)
		sessions.POST("/:session_id/payments", budgetHandler.AddPayment)
		sessions.DELETE("/:session_id/payments/:index", budgetHandler.RemovePayment)

		sessions.POST("/:session_id/save", budgetHandler.Save)
		sessions.POST("/:session_id/confirm", budgetHandler.ConfirmOrder)
		sessions.POST("/:session_id/cancel", budgetHandler.Cancel)
	}

	slots := sessions.Group("/:session_id/slots")
	{
		slots.POST("/exam", slotHandler.ChooseExam)
		slots.POST("/date", slotHandler.ChooseDate)
		slots.POST("/time", slotHandler.ChooseTime)
		slots.GET("/dates", slotHandler.CandidateDates)
	}
}
