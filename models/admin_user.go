package models

import (
	"time"
)

// AdminUser is a back-office account. Accounts are seeded at startup,
// there is no self-registration.
type AdminUser struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt" swaggerignore:"true"`
	UpdatedAt time.Time `json:"updatedAt" swaggerignore:"true"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminLogin is the payload accepted by POST /admin/login
type AdminLogin struct {
	Email    string `json:"email" binding:"required" example:"admin@tatva.example"`
	Password string `json:"password" binding:"required" example:"changeme"`
}
