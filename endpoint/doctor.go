package endpoint

import (
	"time"

	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DoctorSchedule struct {
	Doctor       model.Doctor        `json:"doctor"`
	Date         string              `json:"date" example:"2025-03-01"`
	Appointments []model.Appointment `json:"appointments"`
}

type DoctorPatients struct {
	Doctor   model.Doctor    `json:"doctor"`
	Patients []model.Patient `json:"patients"`
}

// dayBounds returns the start of t's local calendar day and the start of the next one.
func dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

func appointmentsOn(db *gorm.DB, doctorID uint, day time.Time, withPatient bool) ([]model.Appointment, error) {
	start, end := dayBounds(day)
	query := db.Where("doctor_id = ? AND appointment_time >= ? AND appointment_time < ?", doctorID, start, end).
		Order("appointment_time")
	if withPatient {
		query = query.Preload("Patient")
	}
	var appointments []model.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// patientsSeenBy lists every patient that ever had an appointment with the doctor, once each.
func patientsSeenBy(db *gorm.DB, doctorID uint) ([]model.Patient, error) {
	var patients []model.Patient
	err := db.Distinct("patients.*").
		Joins("JOIN appointments ON appointments.patient_id = patients.id").
		Where("appointments.doctor_id = ? AND appointments.deleted_at IS NULL", doctorID).
		Order("patients.id").
		Find(&patients).Error
	return patients, err
}

func doctorScheduleOrRespond(c *gin.Context, withPatient bool) (DoctorSchedule, bool) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return DoctorSchedule{}, false
	}
	doctor, ok := doctorFromParamOrRespond(c, db)
	if !ok {
		return DoctorSchedule{}, false
	}

	now := time.Now()
	appointments, err := appointmentsOn(db, doctor.ID, now, withPatient)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve appointments", Err: err})
		return DoctorSchedule{}, false
	}
	return DoctorSchedule{Doctor: doctor, Date: now.Format("2006-01-02"), Appointments: appointments}, true
}

// DoctorDashboard godoc
// @Summary      Doctor dashboard
// @Description  The doctor and the appointments scheduled for the current local day
// @Tags         Doctor
// @Produce      json
// @Param        doctor_id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=DoctorSchedule}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/{doctor_id} [get]
func DoctorDashboard(c *gin.Context) {
	schedule, ok := doctorScheduleOrRespond(c, false)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor dashboard", Data: schedule})
}

// DoctorTodaysPatients godoc
// @Summary      Today's patients
// @Description  Today's appointments of the doctor with their patients
// @Tags         Doctor
// @Produce      json
// @Param        doctor_id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=DoctorSchedule}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/{doctor_id}/patients [get]
func DoctorTodaysPatients(c *gin.Context) {
	schedule, ok := doctorScheduleOrRespond(c, true)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Today's patients", Data: schedule})
}

// DoctorProfile godoc
// @Summary      Doctor profile
// @Tags         Doctor
// @Produce      json
// @Param        doctor_id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=model.Doctor}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /doctor/{doctor_id}/profile [get]
func DoctorProfile(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	doctor, ok := doctorFromParamOrRespond(c, db)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor profile", Data: doctor})
}

// AllPatients godoc
// @Summary      All patients of a doctor
// @Description  Distinct patients that have had at least one appointment with the doctor
// @Tags         Doctor
// @Produce      json
// @Param        doctor_id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=DoctorPatients}
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /allPatients/{doctor_id} [get]
func AllPatients(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	doctor, ok := doctorFromParamOrRespond(c, db)
	if !ok {
		return
	}

	patients, err := patientsSeenBy(db, doctor.ID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve patients", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "All patients", Data: DoctorPatients{Doctor: doctor, Patients: patients}})
}
