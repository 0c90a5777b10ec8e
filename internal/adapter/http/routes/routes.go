package routes

import (
	"log"
	"os"
	"strconv"

	_ "vendas_xpto/docs" // This will be auto-generated
	"vendas_xpto/internal/adapter/http/handlers"
	repository2 "vendas_xpto/internal/adapter/persistence/repository"
	"vendas_xpto/internal/infrastructure/database"
	"vendas_xpto/internal/infrastructure/notification"
	"vendas_xpto/internal/infrastructure/storage"
	"vendas_xpto/internal/usecase"
	"vendas_xpto/internal/usecase/interfaces"

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

	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	var imageStore interfaces.IImageStore
	s3Store, err := storage.NewS3ImageStore(database.ConnectS3(), os.Getenv("PRODUCT_IMAGES_BUCKET"), database.Region())
	if err != nil {
		log.Printf("Product image store not configured: %v", err)
	} else {
		imageStore = s3Store
	}

	var intakeGateway interfaces.IOrderIntakeGateway
	intake, err := notification.NewOrderIntakeGateway(os.Getenv("ORDER_INTAKE_URL"), os.Getenv("ORDER_INTAKE_TOKEN"))
	if err != nil {
		log.Printf("Order intake gateway not configured: %v", err)
	} else {
		intakeGateway = intake
	}

	productUseCase := usecase.NewProductUseCase(productRepo, imageStore)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, intakeGateway)

	productHandler := handlers.NewProductHandler(productUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, productHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
