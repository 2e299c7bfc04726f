package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "laboratorio_xpto/docs"
	"laboratorio_xpto/internal/adapter/http/handlers"
	"laboratorio_xpto/internal/adapter/persistence/repository"
	"laboratorio_xpto/internal/adapter/session"
	"laboratorio_xpto/internal/infrastructure/database"
	"laboratorio_xpto/internal/infrastructure/messaging"
	"laboratorio_xpto/internal/infrastructure/payments"
	"laboratorio_xpto/internal/usecase"
	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const (
	defaultPort        = 8080
	defaultHorizonDays = 60
)

// Run will start the server
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(envInt("PORT", defaultPort)))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := database.ConnectRedis()

	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	priceRepo := repository.NewPriceDynamoRepository(ddb)
	catalogRepo := repository.NewExamCatalogDynamoRepository(ddb)
	permissionRepo := repository.NewPermissionDynamoRepository(ddb)
	scheduleRepo := repository.NewScheduleDynamoRepository(ddb)
	sessionStore := session.NewRedisSessionStore(rdb)

	var publisher interfaces.IOrderEventPublisher
	if conn, err := messaging.ConnectRabbitMQ(); err != nil {
		log.Printf("[routes] rabbitmq unavailable, order events disabled err=%v", err)
	} else if p, err := messaging.NewRabbitMQPublisher(conn); err != nil {
		log.Printf("[routes] rabbitmq publisher not configured err=%v", err)
	} else {
		publisher = p
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[routes] mercado pago gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	budgetUseCase := usecase.NewBudgetUseCase(usecase.BudgetDeps{
		Sessions:    sessionStore,
		Budgets:     budgetRepo,
		Orders:      orderRepo,
		Eligibility: usecase.NewOrderEligibility(budgetRepo, orderRepo),
		Publisher:   publisher,
		Gateway:     paymentGateway,
		Prices:      priceRepo,
		Catalog:     catalogRepo,
		Permissions: permissionRepo,
	})

	horizon := time.Duration(envInt("SLOT_SEARCH_HORIZON_DAYS", defaultHorizonDays)) * 24 * time.Hour
	slotUseCase := usecase.NewSlotUseCase(sessionStore, usecase.NewSlotFinder(scheduleRepo, horizon), catalogRepo)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	slotHandler := handlers.NewSlotHandler(slotUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, budgetHandler, slotHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
