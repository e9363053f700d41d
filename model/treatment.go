package model

import (
	"gorm.io/gorm"
)

// Treatment represents a diagnosis recorded for a patient
// @Description Treatment information
type Treatment struct {
	gorm.Model
	Diagnosis  string `json:"diagnosis" gorm:"size:200;not null" example:"Lower back pain"`
	ReportPath string `json:"report_path" gorm:"size:200;not null" example:"reports/2025/03/01.pdf"`
	PatientID  uint   `json:"patient_id" gorm:"not null;index" example:"1"`
}
