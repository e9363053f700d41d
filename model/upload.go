package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrUploadImmutable is returned when anything tries to modify a stored upload.
var ErrUploadImmutable = errors.New("uploads are immutable once created")

// Upload is an opaque binary blob attached to a patient record.
type Upload struct {
	gorm.Model
	Filename   string    `json:"filename" gorm:"size:255"`
	UploadedAt time.Time `json:"uploaded_at"`
	Data       []byte    `json:"-"`
	PatientID  uint      `json:"patient_id" gorm:"not null;index"`
}

// BeforeCreate assigns the upload timestamp on the server side.
func (u *Upload) BeforeCreate(tx *gorm.DB) error {
	u.UploadedAt = time.Now()
	return nil
}

func (u *Upload) BeforeUpdate(tx *gorm.DB) error {
	return ErrUploadImmutable
}
