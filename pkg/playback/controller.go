// Package playback steps through a user's stories one segment at a time.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/stories"
)

// SegmentDuration is how long a single story is shown.
const SegmentDuration = 14 * time.Second

const requestTimeout = 10 * time.Second

// ErrClosed is returned when the controller was closed or reopened while a load was in flight.
var ErrClosed = errors.New("playback closed")

//go:generate mockgen -destination=../../mocks/playback_mock.go -package=mocks . StoryService

// StoryService is the remote story API as seen by the playing user.
type StoryService interface {
	ListOwnerSegments(ctx context.Context, owner int) ([]*stories.Story, error)
	RecordView(ctx context.Context, id string) error
	ToggleMute(ctx context.Context, owner int) (bool, error)
	GetMutedUsers(ctx context.Context) ([]int, error)
}

// Selection is the roster entry a playback is opened from.
type Selection struct {
	UserID    int
	StoryID   string
	MediaURL  string
	CreatedAt time.Time
}

// NewSelection opens playback at the story a roster group represents.
func NewSelection(group *stories.Group) Selection {
	return Selection{
		UserID:    group.UserID,
		StoryID:   group.ID,
		MediaURL:  group.MediaURL,
		CreatedAt: group.CreatedAt,
	}
}

// Controller drives playback for one viewer.
//
// Every session started by Open carries a generation. Timer callbacks and background results
// compare their generation and timer sequence with the current ones and are dropped on mismatch.
type Controller struct {
	mux sync.Mutex

	service StoryService
	clock   Clock
	viewer  int
	onClose func()

	state     State
	selection Selection
	segments  []*stories.Story
	index     int
	started   time.Time
	muted     bool

	timer      Timer
	generation uint64
	sequence   uint64

	// muteVersion changes with every toggle. Mute results from older versions are dropped.
	muteVersion uint64

	viewed map[string]bool

	wg sync.WaitGroup
}

// NewController creates a controller for viewer. onClose is called when playback runs past the
// last segment, it may be nil.
func NewController(service StoryService, clock Clock, viewer int, onClose func()) *Controller {
	return &Controller{
		service: service,
		clock:   clock,
		viewer:  viewer,
		onClose: onClose,
		state:   Idle,
		viewed:  make(map[string]bool),
	}
}

// Open starts a session for the owner of sel. Until the owner's segments are loaded the
// selection itself is exposed as the only segment. An empty load closes the controller, a failed
// one closes it and returns the error.
func (c *Controller) Open(ctx context.Context, sel Selection) error {
	c.mux.Lock()
	c.reset(Idle)
	c.selection = sel
	c.segments = []*stories.Story{{
		ID:        sel.StoryID,
		UserID:    sel.UserID,
		MediaURL:  sel.MediaURL,
		CreatedAt: sel.CreatedAt,
	}}
	c.muted = false
	c.viewed = make(map[string]bool)
	generation, version := c.generation, c.muteVersion
	c.mux.Unlock()

	if sel.UserID != c.viewer {
		c.loadMuted(generation, version, sel.UserID)
	}

	segments, err := c.service.ListOwnerSegments(ctx, sel.UserID)

	c.mux.Lock()
	if generation != c.generation {
		c.mux.Unlock()
		return ErrClosed
	}

	if err != nil {
		c.reset(Closed)
		c.mux.Unlock()
		return errors.Wrap(err, "failed to load segments")
	}

	if len(segments) == 0 {
		c.reset(Closed)
		c.mux.Unlock()
		c.notifyClose()
		return nil
	}

	c.segments = segments
	c.enter(indexOf(segments, sel.StoryID))
	c.mux.Unlock()

	return nil
}

// UpdateSegments replaces the segments of the running session. The segment that was opened
// stays selected when present, otherwise playback restarts at the first segment. The running
// countdown survives when the playing story does not change.
func (c *Controller) UpdateSegments(segments []*stories.Story) {
	c.mux.Lock()

	if c.state == Closed {
		c.mux.Unlock()
		return
	}

	if len(segments) == 0 {
		c.reset(Closed)
		c.mux.Unlock()
		c.notifyClose()
		return
	}

	index := indexOf(segments, c.selection.StoryID)
	playing := c.state == Playing || c.state == MenuOpen
	unchanged := playing && c.index < len(c.segments) && c.segments[c.index].ID == segments[index].ID

	c.segments = segments

	if unchanged {
		c.index = index
		c.mux.Unlock()
		return
	}

	c.enter(index)
	c.mux.Unlock()
}

// Close stops playback. Closing a closed controller does nothing.
func (c *Controller) Close() {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.state == Closed {
		return
	}

	c.reset(Closed)
}

// OpenMenu shows the story menu. It is only available while playing someone else's story.
func (c *Controller) OpenMenu() bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.state != Playing || c.selection.UserID == c.viewer {
		return false
	}

	c.state = MenuOpen
	return true
}

// CloseMenu dismisses the menu without acting on it.
func (c *Controller) CloseMenu() bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.state != MenuOpen {
		return false
	}

	c.state = Playing
	return true
}

// ToggleMute hides or unhides the owner from the menu and dismisses it. The countdown keeps running.
func (c *Controller) ToggleMute() bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.state != MenuOpen {
		return false
	}

	c.state = Playing

	c.muteVersion++

	owner := c.selection.UserID
	generation, version := c.generation, c.muteVersion

	c.spawn(func(ctx context.Context) {
		muted, err := c.service.ToggleMute(ctx, owner)
		if err != nil {
			logger.Log.Warn("failed to toggle mute", zap.Int("owner", owner), zap.Error(err))
			return
		}

		c.mux.Lock()
		if generation == c.generation && version == c.muteVersion {
			c.muted = muted
		}
		c.mux.Unlock()
	})

	return true
}

// State returns the current state and segment index.
func (c *Controller) State() (State, int) {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.state, c.index
}

// Segments returns the segments of the session.
func (c *Controller) Segments() []*stories.Story {
	c.mux.Lock()
	defer c.mux.Unlock()

	result := make([]*stories.Story, len(c.segments))
	copy(result, c.segments)
	return result
}

// Muted reports whether the viewer has hidden the owner being played.
func (c *Controller) Muted() bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.muted
}

// Progress returns the fill of every segment bar at now.
func (c *Controller) Progress(now time.Time) []float64 {
	c.mux.Lock()
	defer c.mux.Unlock()

	result := make([]float64, len(c.segments))
	for i := range c.segments {
		switch {
		case i < c.index:
			result[i] = 1
		case i == c.index && (c.state == Playing || c.state == MenuOpen):
			result[i] = clamp(float64(now.Sub(c.started)) / float64(SegmentDuration))
		}
	}

	return result
}

// Wait blocks until all background requests have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// enter plays segment i. Must be called with the lock held.
func (c *Controller) enter(i int) {
	c.stopTimer()

	c.index = i
	c.state = Playing
	c.started = c.clock.Now()

	c.sequence++
	generation, sequence := c.generation, c.sequence
	c.timer = c.clock.AfterFunc(SegmentDuration, func() {
		c.expire(generation, sequence)
	})

	story := c.segments[i]
	if story.UserID == c.viewer || c.viewed[story.ID] {
		return
	}

	c.viewed[story.ID] = true

	id := story.ID
	c.spawn(func(ctx context.Context) {
		err := c.service.RecordView(ctx, id)
		if err != nil {
			logger.Log.Warn("failed to record view", zap.String("story", id), zap.Error(err))
		}
	})
}

func (c *Controller) expire(generation, sequence uint64) {
	c.mux.Lock()

	if generation != c.generation || sequence != c.sequence {
		c.mux.Unlock()
		return
	}

	c.timer = nil

	if c.index+1 < len(c.segments) {
		c.enter(c.index + 1)
		c.mux.Unlock()
		return
	}

	c.reset(Closed)
	c.mux.Unlock()

	c.notifyClose()
}

// reset ends the current session. Must be called with the lock held.
func (c *Controller) reset(state State) {
	c.stopTimer()
	c.generation++
	c.state = state
	c.index = 0
}

func (c *Controller) stopTimer() {
	if c.timer == nil {
		return
	}

	c.timer.Stop()
	c.timer = nil
}

func (c *Controller) loadMuted(generation, version uint64, owner int) {
	c.spawn(func(ctx context.Context) {
		muted, err := c.service.GetMutedUsers(ctx)
		if err != nil {
			logger.Log.Warn("failed to load mutes", zap.Error(err))
			return
		}

		c.mux.Lock()
		defer c.mux.Unlock()

		if generation != c.generation || version != c.muteVersion {
			return
		}

		for _, id := range muted {
			if id == owner {
				c.muted = true
			}
		}
	})
}

func (c *Controller) spawn(fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		fn(ctx)
	}()
}

func (c *Controller) notifyClose() {
	if c.onClose != nil {
		c.onClose()
	}
}

func indexOf(segments []*stories.Story, id string) int {
	for i, story := range segments {
		if story.ID == id {
			return i
		}
	}

	return 0
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
