package endpoint

import (
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PatientReport struct {
	Patient model.Patient `json:"patient"`
	Doctor  model.Doctor  `json:"doctor"`
}

// PatientDashboard godoc
// @Summary      Patient dashboard
// @Description  The patient with the assigned doctor, appointments, treatments and uploaded files
// @Tags         Patient
// @Produce      json
// @Param        patient_id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient}
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{patient_id} [get]
func PatientDashboard(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "patient_id", "Patient not found")
	if !ok {
		return
	}

	var patient model.Patient
	query := db.Preload("Doctor").
		Preload("Treatments").
		Preload("Uploads", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "created_at", "updated_at", "filename", "uploaded_at", "patient_id").Order("id")
		}).
		Preload("Appointments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("appointment_time")
		}).
		Preload("Appointments.Doctor")
	if !firstOrRespond(c, query, &patient, id, "Patient not found", "/") {
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient dashboard", Data: patient})
}

// Report godoc
// @Summary      Patient report
// @Description  Data for a report written by a doctor about a patient
// @Tags         Doctor
// @Produce      json
// @Param        doctor_id path int true "Doctor ID"
// @Param        patient_id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=PatientReport}
// @Failure      404 {object} util.APIResponse "Patient or doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /report/{doctor_id}/{patient_id} [get]
func Report(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	patientID, ok := parseIDParam(c, "patient_id", "Patient not found")
	if !ok {
		return
	}

	var report PatientReport
	if !firstOrRespond(c, db.Preload("Treatments"), &report.Patient, patientID, "Patient not found", "") {
		return
	}
	doctor, ok := doctorFromParamOrRespond(c, db)
	if !ok {
		return
	}
	report.Doctor = doctor

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Report", Data: report})
}
