package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "financeira_xpto/docs" // This will be auto-generated
	"financeira_xpto/internal/adapter/http/handlers"
	repository2 "financeira_xpto/internal/adapter/persistence/repository"
	"financeira_xpto/internal/infrastructure/database"
	"financeira_xpto/internal/infrastructure/payments"
	"financeira_xpto/internal/usecase"
	"financeira_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	creditRepo := repository2.NewCreditRequestDynamoRepository(ddb)
	sequence := repository2.NewRequestNumberDynamoSequence(ddb)
	directory := repository2.NewApplicantDynamoDirectory(ddb)

	lockTTL := analysisLockTTL()

	creditUseCase := usecase.NewCreditRequestUseCase(creditRepo, sequence)
	analysisUseCase := usecase.NewAnalysisUseCase(creditRepo, lockTTL)
	queueUseCase := usecase.NewQueueUseCase(creditRepo, directory, lockTTL)

	var gateway interfaces.IDisbursementGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}
	disbursementUseCase := usecase.NewDisbursementUseCase(creditRepo, gateway)

	creditHandler := handlers.NewCreditRequestHandler(creditUseCase)
	analysisHandler := handlers.NewAnalysisHandler(analysisUseCase, queueUseCase)
	disbursementHandler := handlers.NewDisbursementHandler(disbursementUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCreditRoutes(v1, creditHandler, analysisHandler, disbursementHandler)
}

// analysisLockTTL reads the lock lease duration. Zero means locks never
// expire and must be released by a decision.
func analysisLockTTL() time.Duration {
	raw := os.Getenv("ANALYSIS_LOCK_TTL_MINUTES")
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		log.Printf("Invalid ANALYSIS_LOCK_TTL_MINUTES=%q, locks will not expire", raw)
		return 0
	}
	return time.Duration(minutes) * time.Minute
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
