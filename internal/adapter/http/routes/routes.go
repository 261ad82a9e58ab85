package routes

import (
	"log"
	"strconv"

	_ "quotedesk/docs" // This will be auto-generated
	"quotedesk/internal/adapter/http/handlers"
	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/infrastructure/database"
	"quotedesk/internal/usecase"

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

	recordRepo := repository.NewRecordDynamoRepository(ddb)
	recordUseCase := usecase.NewRecordUseCase(recordRepo)

	requestHandler := handlers.NewRequestHandler(recordUseCase)
	quoteHandler := handlers.NewQuoteHandler(recordUseCase)
	dashboardHandler := handlers.NewDashboardHandler(recordUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRecordRoutes(v1, requestHandler, quoteHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
