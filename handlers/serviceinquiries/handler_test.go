package serviceinquiries

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"tatva-backend/testutils"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func validServiceInquiryPayload() map[string]string {
	return map[string]string{
		"name":           "Jo Smith",
		"email":          "jo@x.com",
		"phone":          "9876543210",
		"serviceName":    "Fabrication",
		"serviceDetails": "Need custom sheet metal enclosures",
		"message":        "Deadline is end of the quarter",
	}
}

func postServiceInquiry(r http.Handler, payload map[string]string) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/service-inquiries", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func serviceInquiryColumns() []string {
	return []string{"id", "name", "email", "phone", "service_name", "service_details", "message", "status", "date"}
}

func TestCreateServiceInquiry_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "service_inquiries" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/service-inquiries", CreateServiceInquiry)

	resp := postServiceInquiry(r, validServiceInquiryPayload())

	assert.Equal(t, http.StatusCreated, resp.Code)

	var created map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &created)
	assert.NoError(t, err)
	assert.Equal(t, "Fabrication", created["serviceName"])
	assert.Equal(t, "new", created["status"])
}

// The additional-info message has no minimum length and may be absent.
func TestCreateServiceInquiry_EmptyMessage(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "service_inquiries" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("223e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/service-inquiries", CreateServiceInquiry)

	payload := validServiceInquiryPayload()
	delete(payload, "message")

	resp := postServiceInquiry(r, payload)

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateServiceInquiry_ShortDetails(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/service-inquiries", CreateServiceInquiry)

	payload := validServiceInquiryPayload()
	payload["serviceDetails"] = "vague"

	resp := postServiceInquiry(r, payload)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "service details must contain at least 10 characters")
}

func TestCreateServiceInquiry_ShortServiceName(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/service-inquiries", CreateServiceInquiry)

	payload := validServiceInquiryPayload()
	payload["serviceName"] = "F"

	resp := postServiceInquiry(r, payload)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "service name must contain at least 2 characters")
}

func TestGetAllServiceInquiries_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "service_inquiries" ORDER BY date DESC`).
		WillReturnRows(
			mock.NewRows(serviceInquiryColumns()).
				AddRow("123e4567-e89b-12d3-a456-426614174000", "Jo Smith", "jo@x.com", "9876543210", "Fabrication", "Need custom sheet metal enclosures", "", "new", now),
		)

	r := testutils.SetupTestRouter()
	r.GET("/service-inquiries", GetAllServiceInquiries)

	req, _ := http.NewRequest(http.MethodGet, "/service-inquiries", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var inquiries []map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &inquiries)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(inquiries))
}

func TestUpdateServiceInquiryStatus_ReadToReplied(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	id := "123e4567-e89b-12d3-a456-426614174000"
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "service_inquiries" WHERE id = \$1`).
		WillReturnRows(mock.NewRows(serviceInquiryColumns()).
			AddRow(id, "Jo Smith", "jo@x.com", "9876543210", "Fabrication", "Need custom sheet metal enclosures", "", "read", now))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "service_inquiries" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PATCH("/service-inquiries/:id/status", UpdateServiceInquiryStatus)

	jsonData, _ := json.Marshal(map[string]string{"status": "replied"})
	req, _ := http.NewRequest(http.MethodPatch, "/service-inquiries/"+id+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var updated map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &updated)
	assert.Equal(t, "replied", updated["status"])
}

func TestUpdateServiceInquiryStatus_RegressionRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	id := "123e4567-e89b-12d3-a456-426614174000"
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "service_inquiries" WHERE id = \$1`).
		WillReturnRows(mock.NewRows(serviceInquiryColumns()).
			AddRow(id, "Jo Smith", "jo@x.com", "9876543210", "Fabrication", "Need custom sheet metal enclosures", "", "replied", now))

	r := testutils.SetupTestRouter()
	r.PATCH("/service-inquiries/:id/status", UpdateServiceInquiryStatus)

	jsonData, _ := json.Marshal(map[string]string{"status": "read"})
	req, _ := http.NewRequest(http.MethodPatch, "/service-inquiries/"+id+"/status", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteServiceInquiry_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	id := "123e4567-e89b-12d3-a456-426614174000"
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "service_inquiries" WHERE id = \$1`).
		WillReturnRows(mock.NewRows(serviceInquiryColumns()).
			AddRow(id, "Jo Smith", "jo@x.com", "9876543210", "Fabrication", "Need custom sheet metal enclosures", "", "new", now))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "service_inquiries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/service-inquiries/:id", DeleteServiceInquiry)

	req, _ := http.NewRequest(http.MethodDelete, "/service-inquiries/"+id, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["success"])
}
