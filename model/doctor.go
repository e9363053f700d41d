package model

import "gorm.io/gorm"

// Doctor represents a doctor managed by administrators
// @Description Doctor information
type Doctor struct {
	gorm.Model
	Name         string        `json:"name" gorm:"size:25;not null" example:"Dr. Jane Doe"`
	Email        string        `json:"email" gorm:"size:100;uniqueIndex;not null" example:"jane@clinic.example"`
	Phone        string        `json:"phone" gorm:"size:15;uniqueIndex;not null" example:"081234567890"`
	Specialist   string        `json:"specialist" gorm:"size:100;not null" example:"Cardiology"`
	Password     string        `json:"-" gorm:"size:200;not null"`
	Patients     []Patient     `json:"patients,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (d *Doctor) Kind() PrincipalKind    { return KindDoctor }
func (d *Doctor) PrincipalID() uint      { return d.ID }
func (d *Doctor) PrincipalEmail() string { return d.Email }
func (d *Doctor) PasswordHash() string   { return d.Password }
