package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-management/model"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedPrincipals(t *testing.T, db *gorm.DB, email string) (model.Admin, model.Patient, model.Doctor) {
	t.Helper()
	admin := model.Admin{Name: "Admin", Email: email, Password: mustHash(t, "admin-pass"), Role: "owner", Phone: "111"}
	patient := model.Patient{Name: "Patient", Email: email, Password: mustHash(t, "patient-pass")}
	doctor := model.Doctor{Name: "Doctor", Email: email, Phone: "222", Specialist: "GP", Password: mustHash(t, "doctor-pass")}
	for _, v := range []interface{}{&admin, &patient, &doctor} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return admin, patient, doctor
}

func TestAuthenticate_PriorityOnSharedEmail(t *testing.T) {
	db := setupTestDB(t)
	admin, patient, doctor := seedPrincipals(t, db, "shared@clinic.test")
	a := NewAuthenticator()

	tests := []struct {
		password string
		kind     model.PrincipalKind
		id       uint
	}{
		{"admin-pass", model.KindAdministrator, admin.ID},
		{"patient-pass", model.KindPatient, patient.ID},
		{"doctor-pass", model.KindDoctor, doctor.ID},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p, err := a.Authenticate(db, "shared@clinic.test", tt.password)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.kind, p.Kind())
			assert.Equal(t, tt.id, p.PrincipalID())
		})
	}
}

func TestAuthenticate_WrongPasswordIsGenericInEveryTable(t *testing.T) {
	db := setupTestDB(t)
	mustCreate := func(v interface{}) {
		if err := db.Create(v).Error; err != nil {
			t.Fatal(err)
		}
	}
	mustCreate(&model.Admin{Name: "A", Email: "a@clinic.test", Password: mustHash(t, "right"), Role: "r", Phone: "1"})
	mustCreate(&model.Patient{Name: "P", Email: "p@clinic.test", Password: mustHash(t, "right")})
	mustCreate(&model.Doctor{Name: "D", Email: "d@clinic.test", Phone: "2", Specialist: "GP", Password: mustHash(t, "right")})

	a := NewAuthenticator()
	for _, email := range []string{"a@clinic.test", "p@clinic.test", "d@clinic.test", "nobody@clinic.test"} {
		t.Run(email, func(t *testing.T) {
			p, err := a.Authenticate(db, email, "wrong")
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticate_SignupRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	hash := mustHash(t, "patient-secret")
	assert.NotEqual(t, "patient-secret", hash)

	patient := model.Patient{Name: "Round Trip", Email: "rt@clinic.test", Password: hash}
	assert.NoError(t, db.Create(&patient).Error)

	p, err := NewAuthenticator().Authenticate(db, "rt@clinic.test", "patient-secret")
	if assert.NoError(t, err) {
		assert.Equal(t, model.KindPatient, p.Kind())
		assert.Equal(t, "/patient/"+itoa(patient.ID), IdentityOf(p).LandingPath())
	}
}

func TestAuthenticate_AdminLastLogin(t *testing.T) {
	db := setupTestDB(t)
	admin := model.Admin{Name: "A", Email: "boss@clinic.test", Password: mustHash(t, "pw"), Role: "owner", Phone: "9"}
	assert.NoError(t, db.Create(&admin).Error)

	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	a := &Authenticator{Order: DefaultOrder, Now: func() time.Time { return fixed }}
	_, err := a.Authenticate(db, "boss@clinic.test", "pw")
	assert.NoError(t, err)

	var reloaded model.Admin
	db.First(&reloaded, admin.ID)
	assert.True(t, fixed.Equal(reloaded.LastLogin))
}

func TestAuthenticate_CustomOrderAndDBError(t *testing.T) {
	db := setupTestDB(t)
	_, _, doctor := seedPrincipals(t, db, "dup@clinic.test")

	// doctor first: the doctor's password wins even though an admin shares the email
	a := &Authenticator{Order: []Lookup{LookupDoctor, LookupAdmin}}
	p, err := a.Authenticate(db, "dup@clinic.test", "doctor-pass")
	assert.NoError(t, err)
	assert.Equal(t, doctor.ID, p.PrincipalID())

	boom := errors.New("connection reset")
	failing := &Authenticator{Order: []Lookup{func(*gorm.DB, string) (model.Principal, error) { return nil, boom }}}
	_, err = failing.Authenticate(db, "dup@clinic.test", "doctor-pass")
	assert.ErrorIs(t, err, boom)
}

func TestFindPrincipal(t *testing.T) {
	db := setupTestDB(t)
	admin, patient, doctor := seedPrincipals(t, db, "find@clinic.test")

	p, err := FindPrincipal(db, model.KindAdministrator, admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, "find@clinic.test", p.PrincipalEmail())

	p, err = FindPrincipal(db, model.KindPatient, patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.KindPatient, p.Kind())

	p, err = FindPrincipal(db, model.KindDoctor, doctor.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.KindDoctor, p.Kind())

	_, err = FindPrincipal(db, model.KindDoctor, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = FindPrincipal(db, model.PrincipalKind("nurse"), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestEmailCollisions(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Create(&model.Doctor{Name: "D", Email: "c@clinic.test", Phone: "5", Specialist: "GP", Password: "x"}).Error)

	kinds, err := EmailCollisions(db, "c@clinic.test", model.KindPatient)
	assert.NoError(t, err)
	assert.Equal(t, []model.PrincipalKind{model.KindDoctor}, kinds)

	kinds, err = EmailCollisions(db, "c@clinic.test", model.KindDoctor)
	assert.NoError(t, err)
	assert.Empty(t, kinds)
}
