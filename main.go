package main

import (
	"log"
	"os"

	"tatva-backend/db"
	_ "tatva-backend/docs"
	"tatva-backend/routes"
	"tatva-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Tatva Engineering Backend API
// @version 1.0
// @description Submission intake, product catalog and admin console API for the Tatva Engineering website
// @host localhost:8080
// @BasePath /api
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		utils.LogError(err, "Cloudinary initialization failed, product image upload will not work")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
