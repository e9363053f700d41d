package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrInvalidAppointmentTime = errors.New("invalid appointment time")
)

// AppointmentTimeLayout is the minute-precision local time sent by booking forms.
const AppointmentTimeLayout = "2006-01-02T15:04"

type BookingRequest struct {
	DoctorID        json.Number `form:"doctor_id" json:"doctor_id" swaggertype:"string" example:"2"`
	AppointmentTime string      `form:"appointment_time" json:"appointment_time" example:"2025-03-01T10:30"`
	Description     string      `form:"description" json:"description" example:"Follow-up visit"`
}

type AppointmentFormData struct {
	Patient model.Patient  `json:"patient"`
	Doctors []model.Doctor `json:"doctors"`
	Layout  string         `json:"appointment_time_layout" example:"2006-01-02T15:04"`
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// bookAppointment checks that both parties exist, then parses the requested time
// and stores the appointment in one transaction. No overlap check is made.
func bookAppointment(db *gorm.DB, patientID uint, req BookingRequest) (model.Appointment, error) {
	var patient model.Patient
	if err := db.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Appointment{}, ErrPatientNotFound
		}
		return model.Appointment{}, err
	}

	doctorID, err := strconv.ParseUint(strings.TrimSpace(req.DoctorID.String()), 10, 64)
	if err != nil || doctorID == 0 {
		return model.Appointment{}, ErrDoctorNotFound
	}
	var doctor model.Doctor
	if err := db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Appointment{}, ErrDoctorNotFound
		}
		return model.Appointment{}, err
	}

	var appointment model.Appointment
	err = db.Transaction(func(tx *gorm.DB) error {
		at, err := time.ParseInLocation(AppointmentTimeLayout, strings.TrimSpace(req.AppointmentTime), time.Local)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppointmentTime, err)
		}
		appointment = model.Appointment{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentTime: at,
			Description:     optionalString(req.Description),
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return model.Appointment{}, err
	}
	return appointment, nil
}

func respondBookingError(c *gin.Context, patientID uint, err error) {
	patientPage := fmt.Sprintf("/patient/%d", patientID)
	switch {
	case errors.Is(err, ErrPatientNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Invalid patient ID. Patient not found.", Err: err, Redirect: "/"})
	case errors.Is(err, ErrDoctorNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Invalid doctor ID. Doctor not found.", Err: err, Redirect: patientPage})
	case errors.Is(err, ErrInvalidAppointmentTime):
		util.CallUserError(c, util.APIErrorParams{Msg: "An error occurred while booking the appointment", Err: err, Redirect: patientPage})
	default:
		util.Logger().Error().Err(err).Uint("patient_id", patientID).Msg("appointment booking rolled back")
		util.CallServerError(c, util.APIErrorParams{Msg: "An error occurred while booking the appointment", Err: err, Redirect: patientPage})
	}
}

// BookAppointment godoc
// @Summary      Book an appointment
// @Description  Book an appointment of the patient with a doctor
// @Tags         Appointment
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        patient_id path int true "Patient ID"
// @Param        request body BookingRequest true "Booking details"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment booked successfully!"
// @Failure      400 {object} util.APIResponse "Invalid appointment time"
// @Failure      404 {object} util.APIResponse "Patient or doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /book_appointment/{patient_id} [post]
// @Router       /appointment_form/{patient_id} [post]
func BookAppointment(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	parsed, err := strconv.ParseUint(c.Param("patient_id"), 10, 64)
	if err != nil || parsed == 0 {
		respondBookingError(c, 0, ErrPatientNotFound)
		return
	}
	patientID := uint(parsed)

	var req BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:      util.FormatValidationError(err),
			Err:      err,
			Redirect: fmt.Sprintf("/patient/%d", patientID),
		})
		return
	}

	appointment, err := bookAppointment(db, patientID, req)
	if err != nil {
		respondBookingError(c, patientID, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:      "Appointment booked successfully!",
		Data:     appointment,
		Redirect: fmt.Sprintf("/patient/%d", patientID),
	})
}

// AppointmentForm godoc
// @Summary      Appointment form
// @Description  The patient and the doctors that can be booked
// @Tags         Appointment
// @Produce      json
// @Param        patient_id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=AppointmentFormData}
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment_form/{patient_id} [get]
func AppointmentForm(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	patient, ok := patientFromParamOrRespond(c, db)
	if !ok {
		return
	}

	var doctors []model.Doctor
	if err := db.Order("name").Find(&doctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve doctors", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment form",
		Data: AppointmentFormData{Patient: patient, Doctors: doctors, Layout: AppointmentTimeLayout},
	})
}
