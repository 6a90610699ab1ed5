package routes

import (
	"tatva-backend/handlers/serviceinquiries"
	"tatva-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ServiceInquiriesRoutes(api *gin.RouterGroup) {
	api.POST("/service-inquiries", serviceinquiries.CreateServiceInquiry)

	serviceAdminRoutes := api.Group("/service-inquiries")
	serviceAdminRoutes.Use(middleware.AdminAuth())
	{
		serviceAdminRoutes.GET("", serviceinquiries.GetAllServiceInquiries)
		serviceAdminRoutes.PATCH("/:id/status", serviceinquiries.UpdateServiceInquiryStatus)
		serviceAdminRoutes.DELETE("/:id", serviceinquiries.DeleteServiceInquiry)
	}
}
