package routes

import (
	"tatva-backend/handlers/contacts"
	"tatva-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(api *gin.RouterGroup) {
	// Intake is public, moderation is admin only
	api.POST("/contacts", contacts.CreateContact)

	contactsAdminRoutes := api.Group("/contacts")
	contactsAdminRoutes.Use(middleware.AdminAuth())
	{
		contactsAdminRoutes.GET("", contacts.GetAllContacts)
		contactsAdminRoutes.PATCH("/:id/status", contacts.UpdateContactStatus)
		contactsAdminRoutes.DELETE("/:id", contacts.DeleteContact)
	}
}
