package model

import "gorm.io/gorm"

// Patient represents a patient account created at signup
// @Description Patient information
type Patient struct {
	gorm.Model
	Name         string        `json:"name" gorm:"size:25;not null" example:"John Smith"`
	Email        string        `json:"email" gorm:"size:100;uniqueIndex;not null" example:"john@example.com"`
	Gender       string        `json:"gender" example:"male"`
	Age          int           `json:"age" example:"30"`
	Password     string        `json:"-" gorm:"size:200;not null"`
	DoctorID     *uint         `json:"doctor_id" example:"1"`
	Doctor       *Doctor       `json:"doctor,omitempty"`
	Treatments   []Treatment   `json:"treatments,omitempty"`
	Uploads      []Upload      `json:"uploads,omitempty"`
	Appointments []Appointment `json:"appointments,omitempty"`
}

func (p *Patient) Kind() PrincipalKind    { return KindPatient }
func (p *Patient) PrincipalID() uint      { return p.ID }
func (p *Patient) PrincipalEmail() string { return p.Email }
func (p *Patient) PasswordHash() string   { return p.Password }
