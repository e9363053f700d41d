package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type sessionSpec struct {
	Token    string
	Kind     PrincipalKind
	ID       uint
	Lifetime time.Duration
}

func mustCreateSession(t *testing.T, db *gorm.DB, spec sessionSpec) Session {
	t.Helper()
	if spec.Lifetime == 0 {
		spec.Lifetime = time.Hour
	}
	session := Session{
		PrincipalKind: spec.Kind,
		PrincipalID:   spec.ID,
		SessionToken:  spec.Token,
		ExpiresAt:     time.Now().Add(spec.Lifetime),
		ClientIP:      "192.168.1.1",
		Browser:       "Mozilla/5.0",
	}
	mustCreate(t, db, &session)
	return session
}

func TestSessionModel_FindLiveByToken(t *testing.T) {
	db := setupTestDB(t, "session_live", &Session{})
	mustCreateSession(t, db, sessionSpec{Token: "live", Kind: KindDoctor, ID: 3})
	mustCreateSession(t, db, sessionSpec{Token: "stale", Kind: KindDoctor, ID: 3, Lifetime: -time.Minute})

	var found Session
	err := db.Where("session_token = ? AND expires_at > ?", "live", time.Now()).First(&found).Error
	assert.NoError(t, err)
	assert.Equal(t, KindDoctor, found.PrincipalKind)
	assert.Equal(t, uint(3), found.PrincipalID)
	assert.Equal(t, "192.168.1.1", found.ClientIP)

	err = db.Where("session_token = ? AND expires_at > ?", "stale", time.Now()).First(&Session{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSessionModel_UniqueToken(t *testing.T) {
	db := setupTestDB(t, "session_unique", &Session{})
	mustCreateSession(t, db, sessionSpec{Token: "same", Kind: KindPatient, ID: 1})

	err := db.Create(&Session{PrincipalKind: KindAdministrator, PrincipalID: 2, SessionToken: "same", ExpiresAt: time.Now().Add(time.Hour)}).Error
	assert.Error(t, err)
}

func TestSessionModel_DeleteByPrincipal(t *testing.T) {
	db := setupTestDB(t, "session_principal", &Session{})
	mustCreateSession(t, db, sessionSpec{Token: "a", Kind: KindPatient, ID: 1})
	mustCreateSession(t, db, sessionSpec{Token: "b", Kind: KindPatient, ID: 1})
	mustCreateSession(t, db, sessionSpec{Token: "c", Kind: KindDoctor, ID: 1})

	err := db.Where("principal_kind = ? AND principal_id = ?", KindPatient, 1).Delete(&Session{}).Error
	assert.NoError(t, err)

	var remaining []Session
	assert.NoError(t, db.Find(&remaining).Error)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, KindDoctor, remaining[0].PrincipalKind)
	}
}

func TestSessionModel_TokenNotSerialized(t *testing.T) {
	db := setupTestDB(t, "session_json", &Session{})
	session := mustCreateSession(t, db, sessionSpec{Token: "secret-token", Kind: KindAdministrator, ID: 9})

	assert.NotZero(t, session.CreatedAt)
	assert.True(t, session.ExpiresAt.After(session.CreatedAt))
	assert.NotContains(t, toJSON(t, session), "secret-token")
}
