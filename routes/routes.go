package routes

import (
	"os"
	"strings"
	"tatva-backend/utils"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins := strings.Split(env, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	// Vite dev server defaults; credentialed CORS cannot use a wildcard
	return []string{"http://localhost:5173", "http://localhost:3000"}
}

func SetupRouter() *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	basePath := os.Getenv("API_BASE_PATH")
	if basePath == "" {
		basePath = "/api"
	}
	api := r.Group(basePath)

	AdminRoutes(api)
	ContactsRoutes(api)
	InquiriesRoutes(api)
	ServiceInquiriesRoutes(api)
	ProductsRoutes(api)
	PingRoutes(api)

	return r
}
