package serviceinquiries

import (
	"net/http"
	"tatva-backend/db"
	"tatva-backend/models"
	"tatva-backend/utils"
	mailsmodels "tatva-backend/utils/mails-models"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a service inquiry
// @Description Create a new service inquiry; the store assigns id, status and date
// @Tags service-inquiries
// @Accept json
// @Produce json
// @Param inquiry body models.ServiceInquiryCreate true "Inquiry information"
// @Success 201 {object} models.ServiceInquiry
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /service-inquiries [post]
func CreateServiceInquiry(c *gin.Context) {
	var input models.ServiceInquiryCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if msg := utils.ValidateIntakeContact(input.Name, input.Email, input.Phone); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if len(input.ServiceName) < utils.MinSubjectLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The service name must contain at least 2 characters"})
		return
	}

	if len(input.ServiceDetails) < utils.MinBodyLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The service details must contain at least 10 characters"})
		return
	}

	// Message is additional info and has no minimum
	inquiry := models.ServiceInquiry{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		ServiceName:    input.ServiceName,
		ServiceDetails: input.ServiceDetails,
		Message:        input.Message,
		Status:         models.StatusNew,
		Date:           time.Now(),
	}

	result := db.DB.Create(&inquiry)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	emailData := mailsmodels.SubmissionEmailData{
		Kind:    "service inquiry",
		Name:    inquiry.Name,
		Email:   inquiry.Email,
		Phone:   inquiry.Phone,
		Subject: inquiry.ServiceName,
		Body:    inquiry.ServiceDetails,
	}
	go mailsmodels.SubmissionConfirmation(emailData)
	go mailsmodels.SalesNotification(emailData)

	c.JSON(http.StatusCreated, inquiry)
}

// @Summary List service inquiries
// @Description Retrieve all service inquiries, newest first
// @Tags service-inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ServiceInquiry
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /service-inquiries [get]
func GetAllServiceInquiries(c *gin.Context) {
	var inquiries []models.ServiceInquiry

	result := db.DB.Order("date DESC").Find(&inquiries)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// @Summary Update a service inquiry status
// @Description Advance the status of a service inquiry; regressions are rejected
// @Tags service-inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param status body models.StatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} models.ServiceInquiry
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /service-inquiries/{id}/status [patch]
func UpdateServiceInquiryStatus(c *gin.Context) {
	inquiryID := c.Param("id")

	var input models.StatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !input.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	var inquiry models.ServiceInquiry
	result := db.DB.First(&inquiry, "id = ?", inquiryID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service inquiry not found"})
		return
	}

	if !inquiry.Status.CanTransitionTo(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status can only move forward"})
		return
	}

	inquiry.Status = input.Status
	result = db.DB.Save(&inquiry)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating status: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// @Summary Delete a service inquiry
// @Description Remove a service inquiry permanently
// @Tags service-inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Security BearerAuth
// @Success 200 {object} map[string]bool "success: true"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /service-inquiries/{id} [delete]
func DeleteServiceInquiry(c *gin.Context) {
	inquiryID := c.Param("id")

	var inquiry models.ServiceInquiry
	result := db.DB.First(&inquiry, "id = ?", inquiryID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service inquiry not found"})
		return
	}

	result = db.DB.Delete(&inquiry)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting inquiry: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
