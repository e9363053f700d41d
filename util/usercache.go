package util

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ariebrainware/clinic-management/model"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const defaultEmailCacheTTL = 10 * time.Minute

// principalEmailCache maps "<kind>:<id>" to the principal's email address.
var principalEmailCache *cache.Cache

// InitPrincipalEmailCache initializes the cache with the given entry lifetime.
// If ttl <= 0, a default of 10 minutes is used.
func InitPrincipalEmailCache(ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultEmailCacheTTL
	}
	principalEmailCache = cache.New(ttl, 2*ttl)
}

// InitPrincipalEmailCacheFromEnv reads EMAIL_CACHE_TTL_SECONDS.
func InitPrincipalEmailCacheFromEnv() {
	seconds, err := strconv.Atoi(os.Getenv("EMAIL_CACHE_TTL_SECONDS"))
	if err != nil {
		InitPrincipalEmailCache(0)
		return
	}
	InitPrincipalEmailCache(time.Duration(seconds) * time.Second)
}

func emailCacheKey(kind model.PrincipalKind, id uint) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

// PrincipalEmailCacheGet returns the email and true if present in cache.
func PrincipalEmailCacheGet(kind model.PrincipalKind, id uint) (string, bool) {
	if principalEmailCache == nil {
		return "", false
	}
	v, ok := principalEmailCache.Get(emailCacheKey(kind, id))
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// PrincipalEmailCacheSet stores the email for a principal.
func PrincipalEmailCacheSet(kind model.PrincipalKind, id uint, email string) {
	if principalEmailCache == nil {
		return
	}
	principalEmailCache.SetDefault(emailCacheKey(kind, id), email)
}

// PrincipalEmailCacheDelete drops a cached email, used after edits and deletes.
func PrincipalEmailCacheDelete(kind model.PrincipalKind, id uint) {
	if principalEmailCache == nil {
		return
	}
	principalEmailCache.Delete(emailCacheKey(kind, id))
}

func tableFor(kind model.PrincipalKind) interface{} {
	switch kind {
	case model.KindAdministrator:
		return &model.Admin{}
	case model.KindPatient:
		return &model.Patient{}
	case model.KindDoctor:
		return &model.Doctor{}
	}
	return nil
}

// GetPrincipalEmail returns the email for a principal using the cache, falling back to the DB.
func GetPrincipalEmail(db *gorm.DB, kind model.PrincipalKind, id uint) string {
	if id == 0 {
		return ""
	}
	if email, ok := PrincipalEmailCacheGet(kind, id); ok {
		return email
	}
	table := tableFor(kind)
	if db == nil || table == nil {
		return ""
	}
	var row struct{ Email string }
	if err := db.Model(table).Select("email").Where("id = ?", id).Take(&row).Error; err != nil {
		return ""
	}
	if row.Email != "" {
		PrincipalEmailCacheSet(kind, id, row.Email)
	}
	return row.Email
}
