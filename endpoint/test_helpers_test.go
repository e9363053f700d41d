package endpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/middleware"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testPassword = "password123"

// setupEndpointTestDB opens a fresh in-memory database with every table migrated.
func setupEndpointTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.ConnectDatabase()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		for _, m := range model.AllModels() {
			_ = db.Migrator().DropTable(m)
		}
	})
	return db
}

// setupEndpointTest returns a Gin engine serving every handler of the package without role checks.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupEndpointTestDB(t)

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db), middleware.SessionMiddleware())

	r.GET("/", Home)
	r.GET("/home", Home)
	r.GET("/sign", SignupForm)
	r.POST("/sign", Signup)
	r.GET("/login", LoginForm)
	r.POST("/login", Login)
	r.DELETE("/logout", Logout)
	r.POST("/logout", Logout)
	r.GET("/token/validate", ValidateToken)
	r.GET("/forgetPassword", ForgetPassword)
	r.GET("/receptionist", Receptionist)
	r.GET("/administrator", Administrator)
	r.GET("/doctor/:doctor_id", DoctorDashboard)
	r.GET("/doctor/:doctor_id/profile", DoctorProfile)
	r.GET("/doctor/:doctor_id/patients", DoctorTodaysPatients)
	r.GET("/allPatients/:doctor_id", AllPatients)
	r.GET("/appointment_form/:patient_id", AppointmentForm)
	r.POST("/appointment_form/:patient_id", BookAppointment)
	r.POST("/book_appointment/:patient_id", BookAppointment)
	r.GET("/patient/:patient_id", PatientDashboard)
	r.GET("/addAdmin", ListAdmins)
	r.POST("/addAdmin", AddAdmin)
	r.GET("/manageAdmin", ListAdmins)
	r.POST("/manageAdmin", ManageAdmin)
	r.GET("/addDoctor", ListDoctors)
	r.POST("/addDoctor", AddDoctor)
	r.GET("/manageDoctor", ListDoctors)
	r.POST("/manageDoctor", ManageDoctor)
	r.GET("/upload/:patient_id", UploadForm)
	r.POST("/upload/:patient_id", UploadFile)
	r.GET("/patient_files/:patient_id", PatientFiles)
	r.GET("/download/:file_id", DownloadFile)
	r.GET("/report/:doctor_id/:patient_id", Report)
	return r, db
}

type requestSpec struct {
	method string
	path   string
	// body is nil, a raw JSON string, url.Values for a form post, or any value encoded as JSON.
	body    interface{}
	headers map[string]string
}

func performRequest(r http.Handler, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader *strings.Reader
	contentType := ""
	switch v := spec.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		contentType = "application/json"
	case url.Values:
		reader = strings.NewReader(v.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		b, _ := json.Marshal(spec.body)
		reader = strings.NewReader(string(b))
		contentType = "application/json"
	}

	req := httptest.NewRequest(spec.method, spec.path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}
	return serve(r, req)
}

func serve(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

// newUploadRequest builds a multipart request carrying content under the "file" field.
func newUploadRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := auth.HashPassword(plain)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return hashed
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}

func seedPatient(t *testing.T, db *gorm.DB, name, email string) model.Patient {
	t.Helper()
	patient := model.Patient{Name: name, Email: email, Gender: "female", Age: 30, Password: mustHash(t, testPassword)}
	mustCreate(t, db, &patient)
	return patient
}

func seedDoctor(t *testing.T, db *gorm.DB, n int) model.Doctor {
	t.Helper()
	doctor := model.Doctor{
		Name:       fmt.Sprintf("Dr. Number %d", n),
		Email:      fmt.Sprintf("doctor%d@clinic.test", n),
		Phone:      fmt.Sprintf("08120000%04d", n),
		Specialist: "General",
		Password:   mustHash(t, testPassword),
	}
	mustCreate(t, db, &doctor)
	return doctor
}

func seedAdmin(t *testing.T, db *gorm.DB, n int) model.Admin {
	t.Helper()
	admin := model.Admin{
		Name:     fmt.Sprintf("Admin %d", n),
		Email:    fmt.Sprintf("admin%d@clinic.test", n),
		Password: mustHash(t, testPassword),
		Role:     "staff",
		Phone:    fmt.Sprintf("08130000%04d", n),
	}
	mustCreate(t, db, &admin)
	return admin
}

// loginAs logs in through the handler and returns the session token.
func loginAs(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	w, response, err := performRequest(r, requestSpec{
		method: http.MethodPost,
		path:   "/login",
		body:   map[string]string{"email": email, "password": password},
	})
	if err != nil || w.Code != http.StatusOK {
		t.Fatalf("login %s failed: %d %s", email, w.Code, w.Body.String())
	}
	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", value, err)
	}
	return n
}

// assertEnvelope checks the status, the success flag and the message of a response.
func assertEnvelope(t *testing.T, w *httptest.ResponseRecorder, response map[string]interface{}, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	if response == nil {
		t.Fatalf("expected a JSON envelope, got %q", w.Body.String())
	}
	assert.Equal(t, status == http.StatusOK, response["success"])
	if msg != "" {
		assert.Equal(t, msg, response["msg"])
	}
}
