package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/clinic-management/model"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is the only failure a caller of Authenticate sees for a
// bad email or password, whichever table was tried.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUnknownKind is returned when a principal kind does not name a table.
var ErrUnknownKind = errors.New("unknown principal kind")

// Lookup loads a principal by email from one table. A missing row is reported as gorm.ErrRecordNotFound.
type Lookup func(db *gorm.DB, email string) (model.Principal, error)

func LookupAdmin(db *gorm.DB, email string) (model.Principal, error) {
	var admin model.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func LookupPatient(db *gorm.DB, email string) (model.Principal, error) {
	var patient model.Patient
	if err := db.Where("email = ?", email).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func LookupDoctor(db *gorm.DB, email string) (model.Principal, error) {
	var doctor model.Doctor
	if err := db.Where("email = ?", email).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// DefaultOrder is the login priority: an email present in several tables
// resolves to the first one whose password verifies.
var DefaultOrder = []Lookup{LookupAdmin, LookupPatient, LookupDoctor}

// Authenticator resolves credentials against an ordered list of principal tables.
type Authenticator struct {
	Order []Lookup
	Now   func() time.Time
}

// NewAuthenticator returns an Authenticator using DefaultOrder.
func NewAuthenticator() *Authenticator {
	return &Authenticator{Order: DefaultOrder, Now: time.Now}
}

// Authenticate walks the lookups in order. A missing row or a wrong password
// falls through to the next table; if nothing verifies it returns ErrInvalidCredentials.
// An administrator match records LastLogin.
func (a *Authenticator) Authenticate(db *gorm.DB, email, password string) (model.Principal, error) {
	for _, lookup := range a.Order {
		principal, err := lookup(db, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		ok, err := CheckPassword(password, principal.PasswordHash())
		if err != nil || !ok {
			continue
		}

		if admin, isAdmin := principal.(*model.Admin); isAdmin {
			if err := a.touchLastLogin(db, admin); err != nil {
				return nil, err
			}
		}
		return principal, nil
	}
	return nil, ErrInvalidCredentials
}

func (a *Authenticator) touchLastLogin(db *gorm.DB, admin *model.Admin) error {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	admin.LastLogin = now()
	return db.Model(admin).Update("last_login", admin.LastLogin).Error
}

// FindPrincipal loads the principal of the given kind by primary key.
func FindPrincipal(db *gorm.DB, kind model.PrincipalKind, id uint) (model.Principal, error) {
	switch kind {
	case model.KindAdministrator:
		var admin model.Admin
		if err := db.First(&admin, id).Error; err != nil {
			return nil, err
		}
		return &admin, nil
	case model.KindPatient:
		var patient model.Patient
		if err := db.First(&patient, id).Error; err != nil {
			return nil, err
		}
		return &patient, nil
	case model.KindDoctor:
		var doctor model.Doctor
		if err := db.First(&doctor, id).Error; err != nil {
			return nil, err
		}
		return &doctor, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
