package models

import (
	"time"
)

// ServiceInquiry is a request about one of the offered services.
// Message carries optional additional info and has no minimum length.
// @Description Service inquiry tracked through new/read/replied
type ServiceInquiry struct {
	ID             string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string           `json:"name" binding:"required"`
	Email          string           `json:"email" binding:"required,email"`
	Phone          string           `json:"phone" binding:"required"`
	ServiceName    string           `json:"serviceName" gorm:"column:service_name" binding:"required"`
	ServiceDetails string           `json:"serviceDetails" gorm:"column:service_details;type:text" binding:"required"`
	Message        string           `json:"message,omitempty" gorm:"type:text"`
	Status         SubmissionStatus `json:"status" gorm:"type:varchar(10);default:'new'"`
	Date           time.Time        `json:"date" gorm:"column:date"`
}

func (ServiceInquiry) TableName() string {
	return "service_inquiries"
}

// ServiceInquiryCreate is the payload accepted by POST /service-inquiries
type ServiceInquiryCreate struct {
	Name           string `json:"name" binding:"required" example:"Jo Smith"`
	Email          string `json:"email" binding:"required,email" example:"jo@x.com"`
	Phone          string `json:"phone" binding:"required" example:"9876543210"`
	ServiceName    string `json:"serviceName" binding:"required" example:"Fabrication"`
	ServiceDetails string `json:"serviceDetails" binding:"required" example:"Need custom sheet metal enclosures"`
	Message        string `json:"message" example:"Deadline is end of the quarter"`
}
