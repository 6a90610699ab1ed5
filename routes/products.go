package routes

import (
	"tatva-backend/handlers/products"
	"tatva-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ProductsRoutes(api *gin.RouterGroup) {
	// The catalog is public, management is admin only
	api.GET("/products", products.GetAllProducts)
	api.GET("/products/:id", products.GetProductByID)

	productsAdminRoutes := api.Group("/products")
	productsAdminRoutes.Use(middleware.AdminAuth())
	{
		productsAdminRoutes.POST("", products.CreateProduct)
		productsAdminRoutes.POST("/upload", products.UploadProductImage)
		productsAdminRoutes.PUT("/:id", products.UpdateProduct)
		productsAdminRoutes.DELETE("/:id", products.DeleteProduct)
	}
}
