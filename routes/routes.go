package routes

import (
	"time"

	"github.com/ariebrainware/clinic-management/config"
	_ "github.com/ariebrainware/clinic-management/docs"
	"github.com/ariebrainware/clinic-management/endpoint"
	"github.com/ariebrainware/clinic-management/middleware"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// authRateLimit bounds login and signup attempts per client IP.
var authRateLimit = middleware.RateLimitConfig{Limit: 5, Window: 15 * time.Minute}

// SetupRoutes registers the global middleware chain and every handler on router.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.SessionMiddleware())
	router.Use(middleware.EndpointCallLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", endpoint.Home)
	router.GET("/home", endpoint.Home)
	router.GET("/forgetPassword", endpoint.ForgetPassword)
	router.GET("/receptionist", endpoint.Receptionist)

	limited := middleware.RateLimiter(authRateLimit)
	router.GET("/sign", endpoint.SignupForm)
	router.POST("/sign", limited, endpoint.Signup)
	router.GET("/login", endpoint.LoginForm)
	router.POST("/login", limited, endpoint.Login)
	router.DELETE("/logout", endpoint.Logout)
	router.POST("/logout", endpoint.Logout)
	router.GET("/token/validate", endpoint.ValidateToken)

	doctor := router.Group("/doctor/:doctor_id")
	{
		doctor.GET("", endpoint.DoctorDashboard)
		doctor.GET("/profile", endpoint.DoctorProfile)
		doctor.GET("/patients", endpoint.DoctorTodaysPatients)
	}
	router.GET("/allPatients/:doctor_id", endpoint.AllPatients)
	router.GET("/report/:doctor_id/:patient_id", endpoint.Report)

	router.GET("/patient/:patient_id", endpoint.PatientDashboard)
	router.GET("/appointment_form/:patient_id", endpoint.AppointmentForm)
	router.POST("/appointment_form/:patient_id", endpoint.BookAppointment)
	router.POST("/book_appointment/:patient_id", endpoint.BookAppointment)

	router.GET("/upload/:patient_id", endpoint.UploadForm)
	router.POST("/upload/:patient_id", endpoint.UploadFile)
	router.GET("/patient_files/:patient_id", endpoint.PatientFiles)
	router.GET("/download/:file_id", endpoint.DownloadFile)

	admin := router.Group("")
	if cfg.EnforceRoles {
		admin.Use(middleware.RequirePrincipal(model.KindAdministrator))
	}
	{
		admin.GET("/administrator", endpoint.Administrator)
		admin.GET("/addAdmin", endpoint.ListAdmins)
		admin.POST("/addAdmin", endpoint.AddAdmin)
		admin.GET("/manageAdmin", endpoint.ListAdmins)
		admin.POST("/manageAdmin", endpoint.ManageAdmin)
		admin.GET("/addDoctor", endpoint.ListDoctors)
		admin.POST("/addDoctor", endpoint.AddDoctor)
		admin.GET("/manageDoctor", endpoint.ListDoctors)
		admin.POST("/manageDoctor", endpoint.ManageDoctor)
	}
}
