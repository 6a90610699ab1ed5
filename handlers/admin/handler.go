package admin

import (
	"errors"
	"net/http"
	"tatva-backend/db"
	"tatva-backend/middleware"
	"tatva-backend/models"
	"tatva-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Session lifetime in hours; the cookie and the JWT expire together.
const sessionHours = 72

// @Summary Admin login
// @Description Authenticate an admin and set the session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body models.AdminLogin true "Admin credentials"
// @Success 200 {object} map[string]interface{} "success, authenticated, message"
// @Failure 400 {object} map[string]interface{} "success: false, message: Invalid input"
// @Failure 401 {object} map[string]interface{} "success: false, message: Invalid email or password"
// @Failure 500 {object} map[string]interface{} "success: false, message: Error message"
// @Router /admin/login [post]
func Login(c *gin.Context) {
	var input models.AdminLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"authenticated": false,
			"message":       "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"authenticated": false,
			"message":       "Invalid email format",
		})
		return
	}

	var admin models.AdminUser
	result := db.DB.Where("email = ?", input.Email).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success":       false,
				"authenticated": false,
				"message":       "Invalid email or password",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":       false,
				"authenticated": false,
				"message":       "Database error: " + result.Error.Error(),
			})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":       false,
			"authenticated": false,
			"message":       "Invalid email or password",
		})
		return
	}

	token, err := utils.GenerateAdminJWT(admin, sessionHours)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":       false,
			"authenticated": false,
			"message":       "Error creating the session token",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, sessionHours*3600, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
		"message":       "Login successful",
	})
}

// @Summary Check admin session
// @Description Report whether the session cookie is still valid. The frontend uses this to confirm its local flag.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "success: true, authenticated: true"
// @Failure 401 {object} map[string]interface{} "success: false, authenticated: false"
// @Router /admin/check-auth [get]
func CheckAuth(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":       false,
			"authenticated": false,
		})
		return
	}

	claims, err := utils.DecodeJWT(token)
	if err != nil || claims["role"] != utils.AdminRole {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":       false,
			"authenticated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
	})
}

// @Summary Admin logout
// @Description Clear the session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "success: true"
// @Router /admin/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}
