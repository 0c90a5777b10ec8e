package routes

import (
	"net/http"
	"os"

	"vendas_xpto/internal/adapter/http/handlers"
	"vendas_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathOrders   = "/orders"
)

func addStoreRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, orderHandler *handlers.OrderHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.GetByID)
		products.POST("", productHandler.Create)

		// Catalog maintenance is internal-only.
		products.PUT("/:id", internalOnly(), productHandler.Update)
		products.DELETE("/:id", internalOnly(), productHandler.Delete)
		products.POST("/:id/image", internalOnly(), productHandler.UploadImage)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PUT("/:id", orderHandler.Update)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	}
}

// internalOnly gates internal endpoints on the X-Internal-Key header.
func internalOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := os.Getenv("INTERNAL_API_KEY")
		if key == "" || c.GetHeader("X-Internal-Key") != key {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized internal access", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
