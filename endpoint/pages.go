package endpoint

import (
	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/middleware"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
)

// Home godoc
// @Summary      Landing page
// @Description  Entry point listing the public pages
// @Tags         Pages
// @Produce      json
// @Success      200 {object} util.APIResponse
// @Router       / [get]
// @Router       /home [get]
func Home(c *gin.Context) {
	cfg := config.LoadConfig()
	data := gin.H{
		"app_name": cfg.AppName,
		"links": gin.H{
			"signup":          "/sign",
			"login":           "/login",
			"forget_password": "/forgetPassword",
		},
	}
	if identity, ok := middleware.GetIdentity(c); ok {
		data["identity"] = identity
		data["landing"] = identity.LandingPath()
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Welcome to " + cfg.AppName, Data: data})
}

// ForgetPassword godoc
// @Summary      Forgotten password page
// @Tags         Pages
// @Produce      json
// @Success      200 {object} util.APIResponse
// @Router       /forgetPassword [get]
func ForgetPassword(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Please contact the clinic administrator to reset your password.",
	})
}

// Receptionist godoc
// @Summary      Receptionist desk
// @Description  Doctors available for booking
// @Tags         Pages
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.Doctor}
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /receptionist [get]
func Receptionist(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var doctors []model.Doctor
	if err := db.Order("name").Find(&doctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve doctors", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Receptionist", Data: doctors})
}

type AdministratorSummary struct {
	Admins       int64 `json:"admins"`
	Doctors      int64 `json:"doctors"`
	Patients     int64 `json:"patients"`
	Appointments int64 `json:"appointments"`
	Uploads      int64 `json:"uploads"`
}

// Administrator godoc
// @Summary      Administrator landing page
// @Description  Record counts shown on the administrator dashboard
// @Tags         Administration
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.APIResponse{data=AdministratorSummary}
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      403 {object} util.APIResponse "Forbidden"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /administrator [get]
func Administrator(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var summary AdministratorSummary
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&model.Admin{}, &summary.Admins},
		{&model.Doctor{}, &summary.Doctors},
		{&model.Patient{}, &summary.Patients},
		{&model.Appointment{}, &summary.Appointments},
		{&model.Upload{}, &summary.Uploads},
	}
	for _, q := range counts {
		if err := db.Model(q.model).Count(q.dst).Error; err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load dashboard", Err: err})
			return
		}
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Administrator", Data: summary})
}
