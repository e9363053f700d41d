package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/middleware"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Name            string `form:"name" json:"name" binding:"required,min=5,max=25" example:"John Smith"`
	Email           string `form:"email" json:"email" binding:"required,email" example:"john@example.com"`
	Gender          string `form:"gender" json:"gender" binding:"omitempty,oneof=male female others" example:"male"`
	Age             int    `form:"age" json:"age" binding:"omitempty,min=5,max=120" example:"30"`
	Password        string `form:"password" json:"password" binding:"required,min=8" example:"password123"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required,eqfield=Password" example:"password123"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email" example:"john@example.com"`
	Password string `form:"password" json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Token       string              `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Kind        model.PrincipalKind `json:"kind" example:"patient"`
	PrincipalID uint                `json:"principal_id" example:"1"`
	Redirect    string              `json:"redirect" example:"/patient/1"`
}

// FormField describes one input of a form rendered by the client.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Choices  []string `json:"choices,omitempty"`
}

var signupFields = []FormField{
	{Name: "name", Type: "text", Required: true},
	{Name: "email", Type: "email", Required: true},
	{Name: "gender", Type: "select", Choices: []string{"male", "female", "others"}},
	{Name: "age", Type: "number"},
	{Name: "password", Type: "password", Required: true},
	{Name: "confirm_password", Type: "password", Required: true},
}

var loginFields = []FormField{
	{Name: "email", Type: "email", Required: true},
	{Name: "password", Type: "password", Required: true},
}

// SignupForm godoc
// @Summary      Signup form
// @Description  Describe the fields accepted by the patient signup
// @Tags         Authentication
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]FormField}
// @Router       /sign [get]
func SignupForm(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Signup form", Data: signupFields})
}

// LoginForm godoc
// @Summary      Login form
// @Description  Describe the fields accepted by the login
// @Tags         Authentication
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]FormField}
// @Router       /login [get]
func LoginForm(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Login form", Data: loginFields})
}

func ensurePatientEmailAvailable(c *gin.Context, db *gorm.DB, email string) bool {
	var existing model.Patient
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:      "Email already registered. Please log in.",
			Err:      fmt.Errorf("email already registered"),
			Redirect: "/login",
		})
		return false
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

// reportEmailCollisions logs when a new account reuses an email of another principal kind.
func reportEmailCollisions(c *gin.Context, db *gorm.DB, email string, kind model.PrincipalKind) {
	others, err := auth.EmailCollisions(db, email, kind)
	if err != nil {
		util.Logger().Warn().Err(err).Str("email", email).Msg("email collision check failed")
		return
	}
	if len(others) > 0 {
		util.LogEmailCollision(email, c.ClientIP(), kind, others)
	}
}

func hashPasswordOrRespond(c *gin.Context, plain string) (string, bool) {
	hashed, err := auth.HashPassword(plain)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
		return "", false
	}
	return hashed, true
}

// Signup godoc
// @Summary      Patient signup
// @Description  Register a new patient account
// @Tags         Authentication
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body SignupRequest true "Signup details"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Signup successful"
// @Failure      400 {object} util.APIResponse "Invalid form or email already registered"
// @Failure      429 {object} util.APIResponse "Too many requests"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /sign [post]
func Signup(c *gin.Context) {
	var req SignupRequest
	if !bindOrRespond(c, &req, "") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	email := strings.TrimSpace(req.Email)
	if !ensurePatientEmailAvailable(c, db, email) {
		return
	}
	reportEmailCollisions(c, db, email, model.KindPatient)

	hashed, ok := hashPasswordOrRespond(c, req.Password)
	if !ok {
		return
	}

	patient := model.Patient{
		Name:     util.NormalizeName(req.Name),
		Email:    email,
		Gender:   req.Gender,
		Age:      req.Age,
		Password: hashed,
	}
	if err := db.Create(&patient).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create new patient", Err: err})
		return
	}

	ci := clientInfo(c)
	util.LogSignupSuccess(util.LoginParams{Kind: model.KindPatient, ID: patient.ID, Email: patient.Email, IP: ci.IP, UserAgent: ci.UserAgent})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:      "Sign up Successful! You can now log in.",
		Data:     patient,
		Redirect: "/login",
	})
}

func authenticateOrRespond(c *gin.Context, db *gorm.DB, req LoginRequest) (model.Principal, bool) {
	ci := clientInfo(c)
	principal, err := auth.NewAuthenticator().Authenticate(db, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		util.LogLoginFailure(util.LoginParams{Email: req.Email, IP: ci.IP, UserAgent: ci.UserAgent, Reason: "invalid credentials"})
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid email or password", Err: err})
		return nil, false
	}
	if err != nil {
		util.LogLoginFailure(util.LoginParams{Email: req.Email, IP: ci.IP, UserAgent: ci.UserAgent, Reason: "database error"})
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return nil, false
	}
	return principal, true
}

func createSessionOrRespond(c *gin.Context, store *auth.SessionStore, identity auth.Identity) (string, bool) {
	ci := clientInfo(c)
	token, _, err := store.Create(c.Request.Context(), identity, ci)
	if err != nil {
		util.LogLoginFailure(util.LoginParams{IP: ci.IP, UserAgent: ci.UserAgent, Reason: "session creation failed"})
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record session", Err: err})
		return "", false
	}
	return token, true
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionTokenName, token, maxAge, "/", "", false, true)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate an administrator, patient or doctor with email and password
// @Tags         Authentication
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid email or password"
// @Failure      429 {object} util.APIResponse "Too many requests"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindOrRespond(c, &req, "") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	principal, ok := authenticateOrRespond(c, db, req)
	if !ok {
		return
	}

	cfg := config.LoadConfig()
	store := auth.NewSessionStore(db, cfg.SessionTTL)
	identity := auth.IdentityOf(principal)
	token, ok := createSessionOrRespond(c, store, identity)
	if !ok {
		return
	}
	setSessionCookie(c, token, int(store.TTL.Seconds()))
	util.PrincipalEmailCacheSet(identity.Kind, identity.ID, principal.PrincipalEmail())

	if config.GetRedisClient() != nil {
		if err := middleware.ResetRateLimit(c.Request.Context(), c.ClientIP(), c.Request.URL.Path); err != nil {
			util.Logger().Warn().Err(err).Str("ip", c.ClientIP()).Msg("failed to reset login rate limit")
		}
	}

	ci := clientInfo(c)
	util.LogLoginSuccess(util.LoginParams{Kind: identity.Kind, ID: identity.ID, Email: principal.PrincipalEmail(), IP: ci.IP, UserAgent: ci.UserAgent})

	landing := identity.LandingPath()
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:      "Login Successful!",
		Data:     LoginResponse{Token: token, Kind: identity.Kind, PrincipalID: identity.ID, Redirect: landing},
		Redirect: landing,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the presented session token
// @Tags         Authentication
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.APIResponse "Logout successful"
// @Failure      400 {object} util.APIResponse "Session not found"
// @Failure      401 {object} util.APIResponse "Session token not provided"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /logout [delete]
// @Router       /logout [post]
func Logout(c *gin.Context) {
	token := middleware.SessionTokenFromRequest(c)
	if token == "" {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Session token not provided",
			Err: fmt.Errorf("session token not provided"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	identity, err := auth.NewSessionStore(db, 0).Revoke(c.Request.Context(), token)
	if errors.Is(err, auth.ErrSessionNotFound) {
		util.CallUserError(c, util.APIErrorParams{Msg: "Session not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete session", Err: err})
		return
	}
	setSessionCookie(c, "", -1)

	ci := clientInfo(c)
	util.LogLogout(util.LoginParams{
		Kind:      identity.Kind,
		ID:        identity.ID,
		Email:     util.GetPrincipalEmail(db, identity.Kind, identity.ID),
		IP:        ci.IP,
		UserAgent: ci.UserAgent,
	})

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logout successful", Redirect: "/login"})
}

type ValidateTokenResponse struct {
	auth.Identity
	Redirect string `json:"redirect" example:"/doctor/2"`
}

// ValidateToken godoc
// @Summary      Validate session token
// @Description  Report the principal bound to a live session token
// @Tags         Authentication
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.APIResponse{data=ValidateTokenResponse} "Valid session token"
// @Failure      401 {object} util.APIResponse "Invalid or expired session token"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /token/validate [get]
func ValidateToken(c *gin.Context) {
	token := middleware.SessionTokenFromRequest(c)
	if token == "" {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Invalid session token", Err: auth.ErrInvalidToken})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	identity, err := auth.NewSessionStore(db, 0).Resolve(c.Request.Context(), token)
	if err == nil {
		// a session whose principal row is gone is no longer valid
		if _, findErr := auth.FindPrincipal(db, identity.Kind, identity.ID); findErr != nil {
			err = findErr
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				err = auth.ErrSessionNotFound
			}
		}
	}
	if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrSessionNotFound) {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Session not found", Err: err, Redirect: "/login"})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to validate session", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Valid session token",
		Data: ValidateTokenResponse{Identity: identity, Redirect: identity.LandingPath()},
	})
}
