package routes

import (
	"tatva-backend/handlers/admin"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(api *gin.RouterGroup) {
	api.POST("/admin/login", admin.Login)
	api.GET("/admin/check-auth", admin.CheckAuth)
	api.POST("/admin/logout", admin.Logout)
}
