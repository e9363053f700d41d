package model

// PrincipalKind names one of the three tables a login can resolve to.
type PrincipalKind string

const (
	KindAdministrator PrincipalKind = "administrator"
	KindPatient       PrincipalKind = "patient"
	KindDoctor        PrincipalKind = "doctor"
)

// Valid reports whether k is one of the known principal kinds.
func (k PrincipalKind) Valid() bool {
	switch k {
	case KindAdministrator, KindPatient, KindDoctor:
		return true
	}
	return false
}

// Principal is an authenticated entity: an Admin, a Patient or a Doctor.
type Principal interface {
	Kind() PrincipalKind
	PrincipalID() uint
	PrincipalEmail() string
	PasswordHash() string
}

var (
	_ Principal = (*Admin)(nil)
	_ Principal = (*Patient)(nil)
	_ Principal = (*Doctor)(nil)
)
