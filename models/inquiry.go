package models

import (
	"time"
)

// ProductInquiry is a quote request for a catalog product, optionally
// narrowed to one of its subproducts
// @Description Product inquiry tracked through new/read/replied
type ProductInquiry struct {
	ID             string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string           `json:"name" binding:"required"`
	Email          string           `json:"email" binding:"required,email"`
	Phone          string           `json:"phone" binding:"required"`
	Subject        string           `json:"subject" binding:"required"`
	Message        string           `json:"message" gorm:"type:text" binding:"required"`
	ProductID      string           `json:"productId" gorm:"column:product_id" binding:"required"`
	SubproductName string           `json:"subproductName,omitempty" gorm:"column:subproduct_name"`
	Status         SubmissionStatus `json:"status" gorm:"type:varchar(10);default:'new'"`
	Date           time.Time        `json:"date" gorm:"column:date"`
}

func (ProductInquiry) TableName() string {
	return "inquiries"
}

// ProductInquiryCreate is the payload accepted by POST /inquiries
type ProductInquiryCreate struct {
	Name           string `json:"name" binding:"required" example:"Jo Smith"`
	Email          string `json:"email" binding:"required,email" example:"jo@x.com"`
	Phone          string `json:"phone" binding:"required" example:"9876543210"`
	Subject        string `json:"subject" binding:"required" example:"Inquiry: Motors & Power Transmission"`
	Message        string `json:"message" binding:"required" example:"Looking for 50 HVAC motors, 2HP"`
	ProductID      string `json:"productId" binding:"required" example:"prod-001"`
	SubproductName string `json:"subproductName" example:"HVAC Motors"`
}
