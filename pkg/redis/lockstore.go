package redis

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// release deletes the lock only while it still carries the caller's token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockStore hands out keyed locks that expire on their own, so a crashed holder never blocks others for long.
// Every store signs the locks it takes and only releases locks carrying its own signature.
type LockStore struct {
	rdb   *redis.Client
	token string
}

func NewLockStore(rdb *redis.Client) *LockStore {
	return &LockStore{rdb: rdb, token: uuid.NewString()}
}

// Acquire takes the lock for key if nobody holds it. It reports whether the lock was taken.
func (l *LockStore) Acquire(key string, expiration time.Duration) (bool, error) {
	return l.rdb.SetNX(l.rdb.Context(), key, l.token, expiration).Result()
}

// Release gives up the lock for key. A lock that expired and was taken by another store is left alone.
func (l *LockStore) Release(key string) error {
	return release.Run(l.rdb.Context(), l.rdb, []string{key}, l.token).Err()
}

// IsHeld returns whether somebody currently holds the lock for key.
func (l *LockStore) IsHeld(key string) bool {
	n, err := l.rdb.Exists(l.rdb.Context(), key).Result()
	if err != nil {
		return false
	}

	return n > 0
}
