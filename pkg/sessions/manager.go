// Package sessions resolves session tokens to user IDs.
package sessions

import (
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// NewSession stores a session for a user. An expiration of 0 means the session never expires.
func (sm *SessionManager) NewSession(id string, user int, expiration time.Duration) error {
	return sm.rdb.Set(sm.rdb.Context(), generateSessionKey(id), user, expiration).Err()
}

// GetUserIDForSession returns the user the session belongs to.
func (sm *SessionManager) GetUserIDForSession(id string) (int, error) {
	str, err := sm.rdb.Get(sm.rdb.Context(), generateSessionKey(id)).Result()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(str)
}

func (sm *SessionManager) CloseSession(id string) error {
	return sm.rdb.Del(sm.rdb.Context(), generateSessionKey(id)).Err()
}

func generateSessionKey(id string) string {
	return "session_" + id
}
