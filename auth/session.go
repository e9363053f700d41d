package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrSessionNotFound is returned when a token has no live session behind it.
	ErrSessionNotFound = errors.New("session not found or expired")
	// ErrInvalidToken is returned for tokens that fail signature, algorithm or expiry checks.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrMissingSecret is returned when JWTSECRET is not configured.
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

// Identity is the authenticated principal bound to a request.
type Identity struct {
	Kind model.PrincipalKind `json:"kind"`
	ID   uint                `json:"principal_id"`
}

// IdentityOf returns the identity of a loaded principal.
func IdentityOf(p model.Principal) Identity {
	return Identity{Kind: p.Kind(), ID: p.PrincipalID()}
}

// LandingPath is the page a principal is sent to after login.
func (i Identity) LandingPath() string {
	switch i.Kind {
	case model.KindAdministrator:
		return "/administrator"
	case model.KindPatient:
		return fmt.Sprintf("/patient/%d", i.ID)
	case model.KindDoctor:
		return fmt.Sprintf("/doctor/%d", i.ID)
	}
	return "/"
}

// Claims is the payload of a session token.
type Claims struct {
	Kind model.PrincipalKind `json:"kind"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 session token for identity valid for ttl.
func IssueToken(identity Identity, ttl time.Duration) (string, error) {
	secret := util.GetJWTSecretByte()
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := Claims{
		Kind: identity.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.ID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken validates the signature, algorithm and expiry of a session token.
func ParseToken(tokenString string) (Identity, error) {
	secret := util.GetJWTSecretByte()
	if len(secret) == 0 {
		return Identity{}, ErrMissingSecret
	}
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 || !claims.Kind.Valid() {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Kind: claims.Kind, ID: uint(id)}, nil
}

// ClientInfo is recorded with every session.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// SessionStore issues, resolves and revokes session tokens. Sessions live in the
// database; Redis, when configured, caches token lookups.
type SessionStore struct {
	DB  *gorm.DB
	TTL time.Duration
}

// NewSessionStore returns a store whose sessions expire after ttl.
func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionStore{DB: db, TTL: ttl}
}

// Create issues a token for identity and records the session.
func (s *SessionStore) Create(ctx context.Context, identity Identity, client ClientInfo) (string, model.Session, error) {
	token, err := IssueToken(identity, s.TTL)
	if err != nil {
		return "", model.Session{}, err
	}
	session := model.Session{
		PrincipalKind: identity.Kind,
		PrincipalID:   identity.ID,
		SessionToken:  token,
		ExpiresAt:     time.Now().Add(s.TTL),
		ClientIP:      client.IP,
		Browser:       client.UserAgent,
	}
	if err := s.DB.WithContext(ctx).Create(&session).Error; err != nil {
		return "", model.Session{}, err
	}
	if err := util.CacheSession(ctx, token, identity.Kind, identity.ID, s.TTL); err != nil {
		util.Logger().Warn().Err(err).Msg("failed to cache session in redis")
	}
	return token, session, nil
}

// Resolve returns the identity behind a live session token. Redis is consulted
// first; on a miss or a Redis error the database is authoritative.
func (s *SessionStore) Resolve(ctx context.Context, token string) (Identity, error) {
	claimed, err := ParseToken(token)
	if err != nil {
		return Identity{}, err
	}

	kind, id, found, err := util.LookupCachedSession(ctx, token)
	if err != nil {
		util.Logger().Warn().Err(err).Msg("redis session lookup failed, falling back to database")
	}
	if found {
		if kind != claimed.Kind || id != claimed.ID {
			return Identity{}, ErrSessionNotFound
		}
		return claimed, nil
	}

	var session model.Session
	err = s.DB.WithContext(ctx).
		Where("session_token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, ErrSessionNotFound
	}
	if err != nil {
		return Identity{}, err
	}
	if session.PrincipalKind != claimed.Kind || session.PrincipalID != claimed.ID {
		return Identity{}, ErrSessionNotFound
	}
	return claimed, nil
}

// Revoke deletes the session for token and returns whose session it was.
func (s *SessionStore) Revoke(ctx context.Context, token string) (Identity, error) {
	var session model.Session
	err := s.DB.WithContext(ctx).Where("session_token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, ErrSessionNotFound
	}
	if err != nil {
		return Identity{}, err
	}
	if err := s.DB.WithContext(ctx).Delete(&session).Error; err != nil {
		return Identity{}, err
	}
	if err := util.RemoveCachedSession(ctx, token, session.PrincipalKind, session.PrincipalID); err != nil {
		util.Logger().Warn().Err(err).Msg("failed to remove session from redis")
	}
	return Identity{Kind: session.PrincipalKind, ID: session.PrincipalID}, nil
}

// RevokeAll deletes every session of a principal, used when its row is removed.
func (s *SessionStore) RevokeAll(ctx context.Context, identity Identity) error {
	err := s.DB.WithContext(ctx).
		Where("principal_kind = ? AND principal_id = ?", identity.Kind, identity.ID).
		Delete(&model.Session{}).Error
	if err != nil {
		return err
	}
	if err := util.InvalidatePrincipalSessions(ctx, identity.Kind, identity.ID); err != nil {
		util.Logger().Warn().Err(err).Msg("failed to invalidate cached sessions")
	}
	return nil
}
