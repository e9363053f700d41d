package util

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/redis/go-redis/v9"
)

// removeFromSetScript removes a token and deletes the set once it is empty.
const removeFromSetScript = `
	local removed = redis.call('SREM', KEYS[1], ARGV[1])
	if removed > 0 then
		if redis.call('SCARD', KEYS[1]) == 0 then
			redis.call('DEL', KEYS[1])
		end
	end
	return removed
`

// ErrMalformedSessionValue is returned when a cached session value is not "<kind>:<id>".
var ErrMalformedSessionValue = errors.New("malformed cached session value")

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func principalSetKey(kind model.PrincipalKind, id uint) string {
	return fmt.Sprintf("principal_sessions:%s:%d", kind, id)
}

// CacheSession stores session:<token> -> "<kind>:<id>" with the session TTL and
// records the token in the per-principal set. A nil Redis client is a no-op.
// The set has no TTL and relies on explicit cleanup.
func CacheSession(ctx context.Context, token string, kind model.PrincipalKind, id uint, ttl time.Duration) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Set(ctx, sessionKey(token), fmt.Sprintf("%s:%d", kind, id), ttl).Err(); err != nil {
		return err
	}
	setKey := principalSetKey(kind, id)
	if err := rdb.SAdd(ctx, setKey, token).Err(); err != nil {
		return err
	}
	return rdb.Persist(ctx, setKey).Err()
}

// LookupCachedSession returns the principal cached for token. found is false on
// a cache miss or when Redis is not configured.
func LookupCachedSession(ctx context.Context, token string) (kind model.PrincipalKind, id uint, found bool, err error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return "", 0, false, nil
	}
	val, err := rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, err
	}
	kind, id, err = parseSessionValue(val)
	if err != nil {
		return "", 0, false, err
	}
	return kind, id, true, nil
}

func parseSessionValue(val string) (model.PrincipalKind, uint, error) {
	parts := strings.SplitN(val, ":", 2)
	if len(parts) != 2 {
		return "", 0, ErrMalformedSessionValue
	}
	kind := model.PrincipalKind(parts[0])
	if !kind.Valid() {
		return "", 0, ErrMalformedSessionValue
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || id == 0 {
		return "", 0, ErrMalformedSessionValue
	}
	return kind, uint(id), nil
}

// RemoveCachedSession deletes session:<token> and removes the token from the principal's set.
func RemoveCachedSession(ctx context.Context, token string, kind model.PrincipalKind, id uint) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return err
	}
	return rdb.Eval(ctx, removeFromSetScript, []string{principalSetKey(kind, id)}, token).Err()
}

// InvalidatePrincipalSessions deletes every cached session of a principal and the set itself.
// Used when an admin or doctor row is deleted.
func InvalidatePrincipalSessions(ctx context.Context, kind model.PrincipalKind, id uint) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	setKey := principalSetKey(kind, id)
	members, err := rdb.SMembers(ctx, setKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	for _, tok := range members {
		_ = rdb.Del(ctx, sessionKey(tok)).Err()
	}
	return rdb.Del(ctx, setKey).Err()
}
