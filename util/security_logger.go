package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ariebrainware/clinic-management/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventLoginSuccess       SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure       SecurityEventType = "LOGIN_FAILURE"
	EventSignupSuccess      SecurityEventType = "SIGNUP_SUCCESS"
	EventLogout             SecurityEventType = "LOGOUT"
	EventUnauthorizedAccess SecurityEventType = "UNAUTHORIZED_ACCESS"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity SecurityEventType = "SUSPICIOUS_ACTIVITY"
	EventEndpointCall       SecurityEventType = "ENDPOINT_CALL"
	EventPrincipalCreated   SecurityEventType = "PRINCIPAL_CREATED"
	EventPrincipalUpdated   SecurityEventType = "PRINCIPAL_UPDATED"
	EventPrincipalDeleted   SecurityEventType = "PRINCIPAL_DELETED"
	EventFileUploaded       SecurityEventType = "FILE_UPLOADED"
	EventFileDownloaded     SecurityEventType = "FILE_DOWNLOADED"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType     SecurityEventType
	PrincipalKind string
	PrincipalID   string
	Email         string
	IP            string
	UserAgent     string
	Message       string
	Details       map[string]interface{}
}

// LoginParams carries the caller fields shared by login, signup and logout events.
type LoginParams struct {
	Kind      model.PrincipalKind
	ID        uint
	Email     string
	IP        string
	UserAgent string
	Reason    string
}

// UnauthorizedAccessParams describes a rejected request to a protected resource.
type UnauthorizedAccessParams struct {
	Kind     model.PrincipalKind
	ID       uint
	Email    string
	IP       string
	Resource string
	Reason   string
}

// RateLimitParams describes a request rejected by the rate limiter.
type RateLimitParams struct {
	Email    string
	IP       string
	Endpoint string
}

// ChangeParams describes a mutation performed by an authenticated actor.
type ChangeParams struct {
	ActorKind  model.PrincipalKind
	ActorID    uint
	IP         string
	TargetKind model.PrincipalKind
	TargetID   uint
	Detail     string
}

var securityLogger *log.Logger
var securityDB *gorm.DB

// SetSecurityLoggerDB sets a gorm DB instance used by the security logger.
// Call this during application startup after DB initialization.
func SetSecurityLoggerDB(db *gorm.DB) {
	securityDB = db
}

func init() {
	securityLogger = log.New(os.Stdout, "[SECURITY] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

func idString(id uint) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("%d", id)
}

// LogSecurityEvent logs a security event
func LogSecurityEvent(event SecurityEvent) {
	msg := fmt.Sprintf("Event=%s Kind=%s ID=%s Email=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.PrincipalKind),
		sanitizeLogValue(event.PrincipalID),
		sanitizeLogValue(event.Email),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)

	// Details are persisted but never written to the log line.
	if len(event.Details) > 0 {
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}

	securityLogger.Println(msg)

	if securityDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.SecurityLog{
		EventType:     string(event.EventType),
		PrincipalKind: sanitizeLogValue(event.PrincipalKind),
		PrincipalID:   sanitizeLogValue(event.PrincipalID),
		Email:         sanitizeLogValue(event.Email),
		IP:            sanitizeLogValue(event.IP),
		Location:      sanitizeLogValue(GetIPLocation(event.IP).String()),
		UserAgent:     sanitizeLogValue(event.UserAgent),
		Message:       sanitizeLogValue(event.Message),
		Details:       details,
	}

	// best-effort write
	if err := securityDB.Create(&entry).Error; err != nil {
		securityLogger.Printf("Failed to persist security event: %v", err)
	}
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(p LoginParams) {
	LogSecurityEvent(SecurityEvent{
		EventType:     EventLoginSuccess,
		PrincipalKind: string(p.Kind),
		PrincipalID:   idString(p.ID),
		Email:         p.Email,
		IP:            p.IP,
		UserAgent:     p.UserAgent,
		Message:       "Principal logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(p LoginParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		Email:     p.Email,
		IP:        p.IP,
		UserAgent: p.UserAgent,
		Message:   fmt.Sprintf("Login failed: %s", p.Reason),
	})
}

// LogSignupSuccess logs a patient self-registration
func LogSignupSuccess(p LoginParams) {
	LogSecurityEvent(SecurityEvent{
		EventType:     EventSignupSuccess,
		PrincipalKind: string(p.Kind),
		PrincipalID:   idString(p.ID),
		Email:         p.Email,
		IP:            p.IP,
		UserAgent:     p.UserAgent,
		Message:       "Patient signed up",
	})
}

// LogLogout logs a logout event
func LogLogout(p LoginParams) {
	LogSecurityEvent(SecurityEvent{
		EventType:     EventLogout,
		PrincipalKind: string(p.Kind),
		PrincipalID:   idString(p.ID),
		Email:         p.Email,
		IP:            p.IP,
		UserAgent:     p.UserAgent,
		Message:       "Principal logged out",
	})
}

// LogUnauthorizedAccess logs unauthorized access attempts
func LogUnauthorizedAccess(p UnauthorizedAccessParams) {
	LogSecurityEvent(SecurityEvent{
		EventType:     EventUnauthorizedAccess,
		PrincipalKind: string(p.Kind),
		PrincipalID:   idString(p.ID),
		Email:         p.Email,
		IP:            p.IP,
		Message:       fmt.Sprintf("Unauthorized access to %s: %s", p.Resource, p.Reason),
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(p RateLimitParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		Email:     p.Email,
		IP:        p.IP,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", p.Endpoint),
	})
}

// LogEmailCollision records that an email is shared across principal tables.
func LogEmailCollision(email, ip string, kind model.PrincipalKind, others []model.PrincipalKind) {
	names := make([]string, 0, len(others))
	for _, k := range others {
		names = append(names, string(k))
	}
	LogSecurityEvent(SecurityEvent{
		EventType:     EventSuspiciousActivity,
		PrincipalKind: string(kind),
		Email:         email,
		IP:            ip,
		Message:       "Email already used by another principal kind",
		Details:       map[string]interface{}{"other_kinds": names},
	})
}

func logChange(eventType SecurityEventType, verb string, p ChangeParams) {
	details := map[string]interface{}{
		"target_kind": string(p.TargetKind),
		"target_id":   p.TargetID,
	}
	if p.Detail != "" {
		details["detail"] = p.Detail
	}
	LogSecurityEvent(SecurityEvent{
		EventType:     eventType,
		PrincipalKind: string(p.ActorKind),
		PrincipalID:   idString(p.ActorID),
		IP:            p.IP,
		Message:       fmt.Sprintf("%s %s %d", verb, p.TargetKind, p.TargetID),
		Details:       details,
	})
}

// LogPrincipalCreated logs the creation of an admin, doctor or patient account.
func LogPrincipalCreated(p ChangeParams) { logChange(EventPrincipalCreated, "Created", p) }

// LogPrincipalUpdated logs an edit of an admin or doctor account.
func LogPrincipalUpdated(p ChangeParams) { logChange(EventPrincipalUpdated, "Updated", p) }

// LogPrincipalDeleted logs the permanent removal of an admin or doctor account.
func LogPrincipalDeleted(p ChangeParams) { logChange(EventPrincipalDeleted, "Deleted", p) }

// LogFileUploaded logs a file attached to a patient record.
func LogFileUploaded(p ChangeParams) { logChange(EventFileUploaded, "Uploaded file for", p) }

// LogFileDownloaded logs a file served from a patient record.
func LogFileDownloaded(p ChangeParams) { logChange(EventFileDownloaded, "Downloaded file of", p) }

// GetSecurityLoggerForTest returns the current security logger for testing purposes
func GetSecurityLoggerForTest() *log.Logger {
	return securityLogger
}

// SetSecurityLoggerForTest sets a custom logger for testing purposes
func SetSecurityLoggerForTest(logger *log.Logger) {
	securityLogger = logger
}
