package routes

import (
	"tatva-backend/handlers/inquiries"
	"tatva-backend/middleware"

	"github.com/gin-gonic/gin"
)

func InquiriesRoutes(api *gin.RouterGroup) {
	api.POST("/inquiries", inquiries.CreateInquiry)

	inquiriesAdminRoutes := api.Group("/inquiries")
	inquiriesAdminRoutes.Use(middleware.AdminAuth())
	{
		inquiriesAdminRoutes.GET("", inquiries.GetAllInquiries)
		inquiriesAdminRoutes.PATCH("/:id/status", inquiries.UpdateInquiryStatus)
		inquiriesAdminRoutes.DELETE("/:id", inquiries.DeleteInquiry)
	}
}
