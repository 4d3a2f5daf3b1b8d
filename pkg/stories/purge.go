package stories

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
)

const (
	purgeLockKey     = "stories_purge_lock"
	purgeLockTimeout = 10 * time.Minute
)

type Locker interface {
	Acquire(key string, expiration time.Duration) (bool, error)
	Release(key string) error
}

// Purger removes expired stories. Only one purger across all instances runs at a time.
type Purger struct {
	service *Service
	locks   Locker
}

func NewPurger(service *Service, locks Locker) *Purger {
	return &Purger{service: service, locks: locks}
}

// Run purges once. It reports whether this instance did the work.
func (p *Purger) Run(ctx context.Context, now time.Time) (bool, error) {
	ok, err := p.locks.Acquire(purgeLockKey, purgeLockTimeout)
	if err != nil {
		return false, unavailable(err, "failed to acquire purge lock")
	}

	if !ok {
		logger.Log.Debug("purge already running elsewhere")
		return false, nil
	}

	defer func() {
		err := p.locks.Release(purgeLockKey)
		if err != nil {
			logger.Log.Warn("failed to release purge lock", zap.Error(err))
		}
	}()

	count, err := p.service.PurgeExpired(ctx, now)
	if err != nil {
		return true, err
	}

	logger.Log.Info("purged expired stories", zap.Int("count", count))
	return true, nil
}
