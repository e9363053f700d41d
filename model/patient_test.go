package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientModel_Create(t *testing.T) {
	db := setupTestDB(t, "patient", AllModels()...)

	patient := Patient{Name: "John Smith", Email: "john@test.com", Gender: "male", Age: 30, Password: "hash"}
	err := db.Create(&patient).Error
	assert.NoError(t, err)
	assert.NotZero(t, patient.ID)
	assert.Nil(t, patient.DoctorID)
}

func TestPatientModel_UniqueEmail(t *testing.T) {
	db := setupTestDB(t, "patient_unique", AllModels()...)

	mustCreate(t, db, &Patient{Name: "First Patient", Email: "same@test.com", Password: "hash"})
	err := db.Create(&Patient{Name: "Second Patient", Email: "same@test.com", Password: "hash"}).Error
	assert.Error(t, err)
}

func TestPatientModel_EmailNotUniqueAcrossTables(t *testing.T) {
	db := setupTestDB(t, "patient_cross", AllModels()...)

	mustCreate(t, db, &Patient{Name: "Patient Pat", Email: "shared@test.com", Password: "hash"})
	err := db.Create(&Doctor{Name: "Doctor Pat", Email: "shared@test.com", Phone: "1", Specialist: "GP", Password: "hash"}).Error
	assert.NoError(t, err)
	err = db.Create(&Admin{Name: "Admin Pat", Email: "shared@test.com", Phone: "2", Role: "owner", Password: "hash"}).Error
	assert.NoError(t, err)
}

func TestPatientModel_AssignedDoctorAndRelations(t *testing.T) {
	db := setupTestDB(t, "patient_rel", AllModels()...)

	doctor := Doctor{Name: "Dr. House", Email: "house@test.com", Phone: "100", Specialist: "Diagnostics", Password: "hash"}
	mustCreate(t, db, &doctor)

	patient := Patient{Name: "Assigned One", Email: "assigned@test.com", Password: "hash", DoctorID: &doctor.ID}
	mustCreate(t, db, &patient)
	mustCreate(t, db, &Treatment{Diagnosis: "Flu", ReportPath: "reports/flu.pdf", PatientID: patient.ID})
	mustCreate(t, db, &Treatment{Diagnosis: "Cough", ReportPath: "reports/cough.pdf", PatientID: patient.ID})

	var found Patient
	err := db.Preload("Doctor").Preload("Treatments").First(&found, patient.ID).Error
	assert.NoError(t, err)
	if assert.NotNil(t, found.Doctor) {
		assert.Equal(t, "Dr. House", found.Doctor.Name)
	}
	assert.Len(t, found.Treatments, 2)

	var withPatients Doctor
	err = db.Preload("Patients").First(&withPatients, doctor.ID).Error
	assert.NoError(t, err)
	assert.Len(t, withPatients.Patients, 1)
}

func TestPrincipalImplementations(t *testing.T) {
	admin := &Admin{Email: "a@test.com", Password: "ha"}
	admin.ID = 1
	patient := &Patient{Email: "p@test.com", Password: "hp"}
	patient.ID = 2
	doctor := &Doctor{Email: "d@test.com", Password: "hd"}
	doctor.ID = 3

	tests := []struct {
		principal Principal
		kind      PrincipalKind
		id        uint
		email     string
		hash      string
	}{
		{admin, KindAdministrator, 1, "a@test.com", "ha"},
		{patient, KindPatient, 2, "p@test.com", "hp"},
		{doctor, KindDoctor, 3, "d@test.com", "hd"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.principal.Kind())
			assert.Equal(t, tt.id, tt.principal.PrincipalID())
			assert.Equal(t, tt.email, tt.principal.PrincipalEmail())
			assert.Equal(t, tt.hash, tt.principal.PasswordHash())
		})
	}
}

func TestPrincipalKindValid(t *testing.T) {
	assert.True(t, KindAdministrator.Valid())
	assert.True(t, KindPatient.Valid())
	assert.True(t, KindDoctor.Valid())
	assert.False(t, PrincipalKind("receptionist").Valid())
	assert.False(t, PrincipalKind("").Valid())
}
