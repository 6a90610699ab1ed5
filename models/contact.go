package models

import (
	"time"
)

// ContactSubmission is a message sent through the public contact form
// @Description Contact form submission tracked through new/read/replied
type ContactSubmission struct {
	ID      string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name    string           `json:"name" binding:"required"`
	Email   string           `json:"email" binding:"required,email"`
	Phone   string           `json:"phone" binding:"required"`
	Subject string           `json:"subject" binding:"required"`
	Message string           `json:"message" gorm:"type:text" binding:"required"`
	Status  SubmissionStatus `json:"status" gorm:"type:varchar(10);default:'new'"`
	Date    time.Time        `json:"date" gorm:"column:date"`
}

func (ContactSubmission) TableName() string {
	return "contacts"
}

// ContactSubmissionCreate is the payload accepted by POST /contacts.
// The store assigns id, status and date.
type ContactSubmissionCreate struct {
	Name    string `json:"name" binding:"required" example:"Jo Smith"`
	Email   string `json:"email" binding:"required,email" example:"jo@x.com"`
	Phone   string `json:"phone" binding:"required" example:"9876543210"`
	Subject string `json:"subject" binding:"required" example:"Quote"`
	Message string `json:"message" binding:"required" example:"Need a quote for 10 units"`
}
