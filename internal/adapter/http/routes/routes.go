package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/ceccimesquita/papillon/internal/adapter/http/handlers"
	"github.com/ceccimesquita/papillon/internal/adapter/http/middleware"
	repository2 "github.com/ceccimesquita/papillon/internal/adapter/persistence/repository"
	"github.com/ceccimesquita/papillon/internal/infrastructure/database"
	"github.com/ceccimesquita/papillon/internal/infrastructure/documents"
	"github.com/ceccimesquita/papillon/internal/usecase"

	"github.com/gin-gonic/gin"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectPostgres()
	cache := database.ConnectRedis()
	secret := jwtSecret()

	txManager := repository2.NewGormTxManager(db)
	clientRepo := repository2.NewClientGormRepository(db)
	budgetRepo := repository2.NewBudgetGormRepository(db)
	eventRepo := repository2.NewEventGormRepository(db)
	supplyRepo := repository2.NewSupplyGormRepository(db)
	menuRepo := repository2.NewMenuGormRepository(db)
	employeeRepo := repository2.NewEmployeeGormRepository(db)
	paymentMethodRepo := repository2.NewPaymentMethodGormRepository(db)
	userRepo := repository2.NewUserGormRepository(db)

	eventUseCase := usecase.NewEventUseCase(eventRepo, clientRepo, supplyRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, clientRepo, eventUseCase, txManager, documents.NewPdfBudgetRenderer())
	supplyUseCase := usecase.NewSupplyUseCase(supplyRepo, eventUseCase, txManager)
	clientUseCase := usecase.NewClientUseCase(clientRepo, eventUseCase)
	menuUseCase := usecase.NewMenuUseCase(menuRepo)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)
	paymentMethodUseCase := usecase.NewPaymentMethodUseCase(paymentMethodRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, secret)

	authHandler := handlers.NewAuthHandler(authUseCase)

	// Rotas publicas
	addPingRoutes(router.Group(""))
	addAuthRoutes(router.Group("/api/auth"), authHandler)

	// Rotas protegidas
	protected := router.Group("")
	protected.Use(middleware.JWTAuth(secret, cache, userRepo))
	addCateringRoutes(
		protected,
		handlers.NewClientHandler(clientUseCase),
		handlers.NewBudgetHandler(budgetUseCase),
		handlers.NewEventHandler(eventUseCase),
		handlers.NewSupplyHandler(supplyUseCase),
		handlers.NewMenuHandler(menuUseCase),
		handlers.NewEmployeeHandler(employeeUseCase),
		handlers.NewPaymentMethodHandler(paymentMethodUseCase),
	)
}

func jwtSecret() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	log.Println("JWT_SECRET not set, using insecure development secret")
	return []byte("dev-secret-change-me")
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
