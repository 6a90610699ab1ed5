package inquiries

import (
	"net/http"
	"tatva-backend/db"
	"tatva-backend/models"
	"tatva-backend/utils"
	mailsmodels "tatva-backend/utils/mails-models"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a product inquiry
// @Description Create a new product inquiry; the store assigns id, status and date
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body models.ProductInquiryCreate true "Inquiry information"
// @Success 201 {object} models.ProductInquiry
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /inquiries [post]
func CreateInquiry(c *gin.Context) {
	var input models.ProductInquiryCreate

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

	if len(input.Subject) < utils.MinSubjectLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The subject must contain at least 2 characters"})
		return
	}

	if len(input.Message) < utils.MinBodyLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The requirement must contain at least 10 characters"})
		return
	}

	inquiry := models.ProductInquiry{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Subject:        input.Subject,
		Message:        input.Message,
		ProductID:      input.ProductID,
		SubproductName: input.SubproductName,
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
		Kind:    "product inquiry",
		Name:    inquiry.Name,
		Email:   inquiry.Email,
		Phone:   inquiry.Phone,
		Subject: inquiry.Subject,
		Body:    inquiry.Message,
	}
	go mailsmodels.SubmissionConfirmation(emailData)
	go mailsmodels.SalesNotification(emailData)

	c.JSON(http.StatusCreated, inquiry)
}

// @Summary List product inquiries
// @Description Retrieve all product inquiries, newest first
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProductInquiry
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /inquiries [get]
func GetAllInquiries(c *gin.Context) {
	var inquiries []models.ProductInquiry

	result := db.DB.Order("date DESC").Find(&inquiries)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// @Summary Update a product inquiry status
// @Description Advance the status of a product inquiry; regressions are rejected
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param status body models.StatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} models.ProductInquiry
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /inquiries/{id}/status [patch]
func UpdateInquiryStatus(c *gin.Context) {
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

	var inquiry models.ProductInquiry
	result := db.DB.First(&inquiry, "id = ?", inquiryID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
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

// @Summary Delete a product inquiry
// @Description Remove a product inquiry permanently
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Security BearerAuth
// @Success 200 {object} map[string]bool "success: true"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /inquiries/{id} [delete]
func DeleteInquiry(c *gin.Context) {
	inquiryID := c.Param("id")

	var inquiry models.ProductInquiry
	result := db.DB.First(&inquiry, "id = ?", inquiryID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	result = db.DB.Delete(&inquiry)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting inquiry: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
