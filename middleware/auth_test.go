package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"tatva-backend/models"
	"tatva-backend/utils"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AdminAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	assert.NoError(t, err)
	return signed
}

func TestAdminAuth_NoToken(t *testing.T) {
	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAdminAuth_ValidCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateAdminJWT(models.AdminUser{ID: "123e4567-e89b-12d3-a456-426614174000"}, 1)
	assert.NoError(t, err)

	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

// API clients without cookie support can pass the token in the
// Authorization header instead.
func TestAdminAuth_BearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateAdminJWT(models.AdminUser{ID: "123e4567-e89b-12d3-a456-426614174000"}, 1)
	assert.NoError(t, err)

	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminAuth_WrongRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, jwt.MapClaims{
		"admin_id": "123e4567-e89b-12d3-a456-426614174000",
		"role":     "VIEWER",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, jwt.MapClaims{
		"admin_id": "123e4567-e89b-12d3-a456-426614174000",
		"role":     utils.AdminRole,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAdminAuth_TamperedSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": "123e4567-e89b-12d3-a456-426614174000",
		"role":     utils.AdminRole,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := other.SignedString([]byte("another-secret"))
	assert.NoError(t, err)

	r := protectedRouter()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
