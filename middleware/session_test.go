package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func captureSecurityLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	original := util.GetSecurityLoggerForTest()
	util.SetSecurityLoggerForTest(log.New(buf, "[SECURITY] ", log.Lmsgprefix))
	t.Cleanup(func() { util.SetSecurityLoggerForTest(original) })
	return buf
}

func createSession(t *testing.T, db *gorm.DB, identity auth.Identity) string {
	t.Helper()
	config.ResetRedisClientForTest()
	token, _, err := auth.NewSessionStore(db, time.Hour).Create(context.Background(), identity, auth.ClientInfo{IP: "127.0.0.1"})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return token
}

type sessionRequest struct {
	token    string
	inCookie bool
}

func runSessionRequest(db *gorm.DB, req sessionRequest, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	if db != nil {
		r.Use(DatabaseMiddleware(db))
	}
	r.Use(SessionMiddleware())
	r.GET("/test", handlers...)

	httpReq := httptest.NewRequest(http.MethodGet, "/test", nil)
	if req.token != "" {
		if req.inCookie {
			httpReq.AddCookie(&http.Cookie{Name: SessionTokenName, Value: req.token})
		} else {
			httpReq.Header.Set(SessionTokenName, req.token)
		}
	}
	r.ServeHTTP(w, httpReq)
	return w
}

func TestSessionMiddleware_BindsIdentity(t *testing.T) {
	db := newInMemoryDB(t)
	want := auth.Identity{Kind: model.KindDoctor, ID: 4}
	token := createSession(t, db, want)

	for _, inCookie := range []bool{false, true} {
		var got auth.Identity
		var ok bool
		w := runSessionRequest(db, sessionRequest{token: token, inCookie: inCookie}, func(c *gin.Context) {
			got, ok = GetIdentity(c)
			c.Status(http.StatusOK)
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestSessionMiddleware_NeverAborts(t *testing.T) {
	db := newInMemoryDB(t)
	tests := []struct {
		name  string
		db    *gorm.DB
		token string
	}{
		{"no token", db, ""},
		{"garbage token", db, "garbage"},
		{"no database", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ok bool
			w := runSessionRequest(tt.db, sessionRequest{token: tt.token}, func(c *gin.Context) {
				_, ok = GetIdentity(c)
				c.Status(http.StatusOK)
			})
			assert.Equal(t, http.StatusOK, w.Code)
			assert.False(t, ok)
		})
	}
}

func TestSessionMiddleware_RevokedSession(t *testing.T) {
	db := newInMemoryDB(t)
	token := createSession(t, db, auth.Identity{Kind: model.KindPatient, ID: 1})
	_, err := auth.NewSessionStore(db, time.Hour).Revoke(context.Background(), token)
	assert.NoError(t, err)

	var ok bool
	runSessionRequest(db, sessionRequest{token: token}, func(c *gin.Context) {
		_, ok = GetIdentity(c)
	})
	assert.False(t, ok)
}

func TestSessionMiddleware_RedisHit(t *testing.T) {
	db := newInMemoryDB(t)
	identity := auth.Identity{Kind: model.KindAdministrator, ID: 1}
	token, err := auth.IssueToken(identity, time.Hour)
	if !assert.NoError(t, err) {
		return
	}

	mock := setupRedisMock(t)
	mock.ExpectGet("session:" + token).SetVal("administrator:1")

	var got auth.Identity
	runSessionRequest(db, sessionRequest{token: token}, func(c *gin.Context) {
		got, _ = GetIdentity(c)
	})
	assert.Equal(t, identity, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequirePrincipal(t *testing.T) {
	db := newInMemoryDB(t)
	adminToken := createSession(t, db, auth.Identity{Kind: model.KindAdministrator, ID: 1})
	patientToken := createSession(t, db, auth.Identity{Kind: model.KindPatient, ID: 2})

	tests := []struct {
		name   string
		token  string
		status int
		logged string
	}{
		{"administrator allowed", adminToken, http.StatusOK, ""},
		{"patient forbidden", patientToken, http.StatusForbidden, "requires administrator"},
		{"anonymous unauthorized", "", http.StatusUnauthorized, "no valid session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureSecurityLog(t)
			w := runSessionRequest(db, sessionRequest{token: tt.token},
				RequirePrincipal(model.KindAdministrator),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)
			assert.Equal(t, tt.status, w.Code)
			if tt.logged != "" {
				assert.Contains(t, buf.String(), "Event=UNAUTHORIZED_ACCESS")
				assert.Contains(t, buf.String(), tt.logged)
			}
		})
	}
}

func TestRequirePrincipal_MultipleKinds(t *testing.T) {
	db := newInMemoryDB(t)
	doctorToken := createSession(t, db, auth.Identity{Kind: model.KindDoctor, ID: 3})
	captureSecurityLog(t)

	w := runSessionRequest(db, sessionRequest{token: doctorToken},
		RequirePrincipal(model.KindAdministrator, model.KindDoctor),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	assert.Equal(t, http.StatusOK, w.Code)
}
