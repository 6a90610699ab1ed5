package db

import (
	"errors"
	"os"
	"tatva-backend/models"
	"tatva-backend/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, falling back to the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "Variable DB_URL not set")
		panic("Database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.ContactSubmission{},
		&models.ProductInquiry{},
		&models.ServiceInquiry{},
		&models.Product{},
		&models.AdminUser{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	seedAdmin()

	utils.LogSuccess("Database connection successful")
}

// seedAdmin creates the back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD. There is no registration endpoint, so this is the
// only way an admin comes into existence.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}

	var existing models.AdminUser
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking for the admin account")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Error hashing the admin password")
		return
	}

	admin := models.AdminUser{
		Email:    email,
		Password: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		utils.LogError(err, "Error creating the admin account")
		return
	}

	utils.LogSuccess("Admin account seeded: " + email)
}
