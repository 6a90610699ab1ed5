package routes

import (
	"tatva-backend/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(api *gin.RouterGroup) {
	handler := ping.New()
	api.GET("/ping", handler.HandlePing)
}
