package model

import (
	"time"

	"gorm.io/gorm"
)

// Session is the server-side record of an issued session token.
type Session struct {
	gorm.Model
	PrincipalKind PrincipalKind `json:"principal_kind" gorm:"size:32;index:idx_session_principal"`
	PrincipalID   uint          `json:"principal_id" gorm:"index:idx_session_principal"`
	SessionToken  string        `json:"-" gorm:"size:512;uniqueIndex"`
	ExpiresAt     time.Time     `json:"expires_at"`
	ClientIP      string        `json:"client_ip" gorm:"size:45"`
	Browser       string        `json:"browser" gorm:"size:512"`
}
