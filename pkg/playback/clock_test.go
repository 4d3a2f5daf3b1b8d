package playback_test

import (
	"sync"
	"time"

	"github.com/soapboxsocial/stories/pkg/playback"
)

type fakeTimer struct {
	clock   *fakeClock
	when    time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mux.Lock()
	defer t.clock.mux.Unlock()

	// Simulates a timer whose callback is already on its way.
	if t.clock.leaky {
		return false
	}

	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// fakeClock only moves when Advance is called. Due callbacks run on the caller's goroutine.
type fakeClock struct {
	mux    sync.Mutex
	now    time.Time
	timers []*fakeTimer
	leaky  bool
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) playback.Timer {
	c.mux.Lock()
	defer c.mux.Unlock()

	t := &fakeTimer{clock: c, when: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mux.Lock()
	target := c.now.Add(d)

	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.when.After(target) {
				continue
			}

			if next == nil || t.when.Before(next.when) {
				next = t
			}
		}

		if next == nil {
			break
		}

		next.fired = true
		c.now = next.when

		c.mux.Unlock()
		next.f()
		c.mux.Lock()
	}

	c.now = target
	c.mux.Unlock()
}
