package contacts

import (
	"net/http"
	"tatva-backend/db"
	"tatva-backend/models"
	"tatva-backend/utils"
	mailsmodels "tatva-backend/utils/mails-models"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a contact request
// @Description Create a new contact submission; the store assigns id, status and date
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactSubmissionCreate true "Contact information"
// @Success 201 {object} models.ContactSubmission
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contacts [post]
func CreateContact(c *gin.Context) {
	var input models.ContactSubmissionCreate

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
		c.JSON(http.StatusBadRequest, gin.H{"error": "The message must contain at least 10 characters"})
		return
	}

	contact := models.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.StatusNew,
		Date:    time.Now(),
	}

	result := db.DB.Create(&contact)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	emailData := mailsmodels.SubmissionEmailData{
		Kind:    "contact request",
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Subject: contact.Subject,
		Body:    contact.Message,
	}
	go mailsmodels.SubmissionConfirmation(emailData)
	go mailsmodels.SalesNotification(emailData)

	c.JSON(http.StatusCreated, contact)
}

// @Summary List contact submissions
// @Description Retrieve all contact submissions, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactSubmission
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contacts [get]
func GetAllContacts(c *gin.Context) {
	var contacts []models.ContactSubmission

	result := db.DB.Order("date DESC").Find(&contacts)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// @Summary Update a contact submission status
// @Description Advance the status of a contact submission; regressions are rejected
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param status body models.StatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} models.ContactSubmission
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contacts/{id}/status [patch]
func UpdateContactStatus(c *gin.Context) {
	contactID := c.Param("id")

	var input models.StatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !input.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	var contact models.ContactSubmission
	result := db.DB.First(&contact, "id = ?", contactID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	}

	if !contact.Status.CanTransitionTo(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status can only move forward"})
		return
	}

	contact.Status = input.Status
	result = db.DB.Save(&contact)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating status: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// @Summary Delete a contact submission
// @Description Remove a contact submission permanently
// @Tags contacts
// @Produce json
// @Param id path string true "Submission ID"
// @Security BearerAuth
// @Success 200 {object} map[string]bool "success: true"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contacts/{id} [delete]
func DeleteContact(c *gin.Context) {
	contactID := c.Param("id")

	var contact models.ContactSubmission
	result := db.DB.First(&contact, "id = ?", contactID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	}

	result = db.DB.Delete(&contact)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting submission: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
