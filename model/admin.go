package model

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents a clinic administrator
// @Description Administrator information
type Admin struct {
	gorm.Model
	Name      string    `json:"name" gorm:"size:50;not null" example:"Site Admin"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null" example:"admin@clinic.example"`
	Password  string    `json:"-" gorm:"size:200;not null"`
	Role      string    `json:"role" gorm:"size:50;not null" example:"superuser"`
	Phone     string    `json:"phone" gorm:"size:15;uniqueIndex;not null" example:"081234567890"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:false"`
}

func (a *Admin) Kind() PrincipalKind    { return KindAdministrator }
func (a *Admin) PrincipalID() uint      { return a.ID }
func (a *Admin) PrincipalEmail() string { return a.Email }
func (a *Admin) PasswordHash() string   { return a.Password }
