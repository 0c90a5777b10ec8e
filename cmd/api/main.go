package main

import (
	_ "vendas_xpto/docs"
	"vendas_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sales Order Service API
// @version         1.0
// @description     Product catalog + sales-order workflow backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey InternalKey
// @in header
// @name X-Internal-Key
// @description Shared key required by internal-only catalog endpoints.

func main() {
	routes.Run()
}
