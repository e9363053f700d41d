package routes

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/middleware"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)
	util.SetJWTSecret("routes-test-secret")
	util.SetLogger(zerolog.Nop())
	util.SetSecurityLoggerForTest(log.New(io.Discard, "", 0))
	config.ResetRedisClientForTest()
	os.Exit(m.Run())
}

func setupRouter(t *testing.T, enforceRoles bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := config.ConnectDatabase()
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	router := gin.New()
	SetupRoutes(router, db, &config.Config{CORSOrigins: []string{"*"}, EnforceRoles: enforceRoles})
	return router, db
}

func do(r http.Handler, method, path string, form url.Values, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set(middleware.SessionTokenName, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func seed(t *testing.T, db *gorm.DB, value model.Principal) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

func login(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	w, response := do(r, http.MethodPost, "/login", url.Values{"email": {email}, "password": {"password123"}}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", email, w.Code, w.Body.String())
	}
	return response["data"].(map[string]interface{})["token"].(string)
}

func TestAdministrationRequiresAdministrator(t *testing.T) {
	r, db := setupRouter(t, true)
	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	seed(t, db, &model.Admin{Name: "Admin One", Email: "admin@clinic.test", Password: hashed, Role: "superuser", Phone: "0811"})
	seed(t, db, &model.Doctor{Name: "Dr. One", Email: "doctor@clinic.test", Password: hashed, Phone: "0812", Specialist: "General"})

	adminToken := login(t, r, "admin@clinic.test")
	doctorToken := login(t, r, "doctor@clinic.test")

	for _, path := range []string{"/administrator", "/addAdmin", "/manageAdmin", "/addDoctor", "/manageDoctor"} {
		t.Run(path, func(t *testing.T) {
			w, _ := do(r, http.MethodGet, path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w, _ = do(r, http.MethodGet, path, nil, doctorToken)
			assert.Equal(t, http.StatusForbidden, w.Code)

			w, response := do(r, http.MethodGet, path, nil, adminToken)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, true, response["success"])
		})
	}

	w, _ := do(r, http.MethodPost, "/manageDoctor", url.Values{"action": {"delete_1"}}, doctorToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	var count int64
	assert.NoError(t, db.Model(&model.Doctor{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRolesNotEnforced(t *testing.T) {
	r, _ := setupRouter(t, false)

	w, response := do(r, http.MethodGet, "/administrator", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"])
}

func TestPublicRoutes(t *testing.T) {
	r, _ := setupRouter(t, true)

	for _, path := range []string{"/", "/home", "/sign", "/login", "/forgetPassword", "/receptionist"} {
		w, response := do(r, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, true, response["success"], path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestSignupLoginThroughRouter(t *testing.T) {
	r, _ := setupRouter(t, true)

	w, _ := do(r, http.MethodPost, "/sign", url.Values{
		"name":             {"Routed Patient"},
		"email":            {"routed@example.com"},
		"password":         {"password123"},
		"confirm_password": {"password123"},
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	token := login(t, r, "routed@example.com")
	w, response := do(r, http.MethodGet, "/token/validate", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "patient", response["data"].(map[string]interface{})["kind"])
}

func TestSwaggerDocument(t *testing.T) {
	r, _ := setupRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/book_appointment/{patient_id}")
}
