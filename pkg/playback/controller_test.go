package playback_test

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/soapboxsocial/stories/mocks"
	"github.com/soapboxsocial/stories/pkg/playback"
	"github.com/soapboxsocial/stories/pkg/stories"
)

const (
	viewer = 1
	owner  = 2
)

var start = time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)

func segments(ids ...string) []*stories.Story {
	result := make([]*stories.Story, 0, len(ids))
	for i, id := range ids {
		result = append(result, &stories.Story{
			ID:        id,
			UserID:    owner,
			MediaURL:  id + ".png",
			CreatedAt: start.Add(time.Duration(i-len(ids)) * time.Hour),
		})
	}

	return result
}

func selection(id string) playback.Selection {
	return playback.Selection{UserID: owner, StoryID: id, MediaURL: id + ".png", CreatedAt: start}
}

type harness struct {
	service *mocks.MockStoryService
	clock   *fakeClock
	closed  int32

	controller *playback.Controller
}

func newHarness(t *testing.T, user int) *harness {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	h := &harness{
		service: mocks.NewMockStoryService(ctrl),
		clock:   newFakeClock(start),
	}

	h.controller = playback.NewController(h.service, h.clock, user, func() {
		atomic.AddInt32(&h.closed, 1)
	})

	t.Cleanup(h.controller.Wait)

	return h
}

func (h *harness) closes() int {
	return int(atomic.LoadInt32(&h.closed))
}

func assertState(t *testing.T, c *playback.Controller, state playback.State, index int) {
	t.Helper()

	s, i := c.State()
	if s != state || i != index {
		t.Fatalf("expected %s(%d) got %s(%d)", state, index, s, i)
	}
}

func TestController_AutoAdvance(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b", "c"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "a").Return(nil)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil)
	h.service.EXPECT().RecordView(gomock.Any(), "c").Return(nil)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	assertState(t, h.controller, playback.Playing, 0)

	h.clock.Advance(playback.SegmentDuration)
	assertState(t, h.controller, playback.Playing, 1)

	h.clock.Advance(playback.SegmentDuration)
	assertState(t, h.controller, playback.Playing, 2)

	h.clock.Advance(playback.SegmentDuration)
	s, _ := h.controller.State()
	if s != playback.Closed {
		t.Fatalf("expected closed got %s", s)
	}

	if h.closes() != 1 {
		t.Fatalf("expected host to be notified once, got %d", h.closes())
	}

	h.controller.Wait()
}

func TestController_Close(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b", "c"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "a").Return(nil)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(playback.SegmentDuration)
	assertState(t, h.controller, playback.Playing, 1)

	h.clock.Advance(5 * time.Second)
	h.controller.Close()
	h.controller.Close()

	// "c" is never entered, so no view is recorded for it.
	h.clock.Advance(time.Minute)
	h.controller.Wait()

	s, _ := h.controller.State()
	if s != playback.Closed {
		t.Fatalf("expected closed got %s", s)
	}

	if h.closes() != 0 {
		t.Fatal("host should not be notified of its own close")
	}
}

func TestController_StartsAtSelectedStory(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b", "c"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil)

	err := h.controller.Open(context.Background(), selection("b"))
	if err != nil {
		t.Fatal(err)
	}

	assertState(t, h.controller, playback.Playing, 1)
}

func TestController_UnknownSelectionStartsAtFirst(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "a").Return(nil)

	err := h.controller.Open(context.Background(), selection("gone"))
	if err != nil {
		t.Fatal(err)
	}

	assertState(t, h.controller, playback.Playing, 0)
}

func TestController_OwnStories(t *testing.T) {
	h := newHarness(t, owner)

	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	if h.controller.OpenMenu() {
		t.Fatal("menu should not open on own stories")
	}

	h.clock.Advance(playback.SegmentDuration)
	assertState(t, h.controller, playback.Playing, 1)
}

func TestController_LoadFailure(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(nil, errors.New("offline"))

	err := h.controller.Open(context.Background(), selection("a"))
	if err == nil {
		t.Fatal("expected error")
	}

	s, _ := h.controller.State()
	if s != playback.Closed {
		t.Fatalf("expected closed got %s", s)
	}
}

func TestController_EmptyLoad(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return([]*stories.Story{}, nil)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	s, _ := h.controller.State()
	if s != playback.Closed || h.closes() != 1 {
		t.Fatalf("expected closed and notified, got %s and %d", s, h.closes())
	}
}

func TestController_InterimSegment(t *testing.T) {
	h := newHarness(t, viewer)

	release := make(chan struct{})

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).DoAndReturn(
		func(context.Context, int) ([]*stories.Story, error) {
			<-release
			return segments("a", "b"), nil
		},
	)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil)

	done := make(chan error)
	go func() {
		done <- h.controller.Open(context.Background(), selection("b"))
	}()

	// Open publishes the interim segment before it starts loading.
	deadline := time.Now().Add(time.Second)
	for {
		current := h.controller.Segments()
		if len(current) == 1 && current[0].ID == "b" {
			break
		}

		if time.Now().After(deadline) {
			t.Fatal("interim segment never appeared")
		}

		time.Sleep(time.Millisecond)
	}

	assertState(t, h.controller, playback.Idle, 0)

	close(release)

	err := <-done
	if err != nil {
		t.Fatal(err)
	}

	if len(h.controller.Segments()) != 2 {
		t.Fatal("expected loaded segments")
	}

	assertState(t, h.controller, playback.Playing, 1)
}

func TestController_Menu(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	h.service.EXPECT().ToggleMute(gomock.Any(), owner).Return(true, nil)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	if h.controller.CloseMenu() {
		t.Fatal("menu was never opened")
	}

	h.clock.Advance(4 * time.Second)

	if !h.controller.OpenMenu() {
		t.Fatal("expected menu to open")
	}

	assertState(t, h.controller, playback.MenuOpen, 0)

	if !h.controller.ToggleMute() {
		t.Fatal("expected toggle")
	}

	assertState(t, h.controller, playback.Playing, 0)

	progress := h.controller.Progress(h.clock.Now())
	if progress[0] != float64(4)/14 {
		t.Fatalf("progress should keep running, got %v", progress)
	}

	h.clock.Advance(10 * time.Second)
	assertState(t, h.controller, playback.Playing, 1)

	h.controller.Wait()

	if !h.controller.Muted() {
		t.Fatal("expected owner to be muted")
	}
}

func TestController_ToggleWinsOverSlowMuteLoad(t *testing.T) {
	h := newHarness(t, viewer)

	release := make(chan struct{})

	h.service.EXPECT().GetMutedUsers(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]int, error) {
		<-release
		return []int{owner}, nil
	})
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "a").Return(nil)
	h.service.EXPECT().ToggleMute(gomock.Any(), owner).Return(false, nil)

	err := h.controller.Open(context.Background(), selection("a"))

	opened := h.controller.OpenMenu()
	toggled := h.controller.ToggleMute()
	close(release)

	h.controller.Wait()

	if err != nil {
		t.Fatal(err)
	}

	if !opened || !toggled {
		t.Fatal("expected menu toggle")
	}

	if h.controller.Muted() {
		t.Fatal("mute list loaded before the toggle should not override it")
	}
}

func TestController_TimerDismissesMenu(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{owner}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	h.controller.OpenMenu()
	h.clock.Advance(playback.SegmentDuration)

	assertState(t, h.controller, playback.Playing, 1)

	h.controller.Wait()

	if !h.controller.Muted() {
		t.Fatal("expected mute state to be loaded")
	}
}

func TestController_Progress(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b", "c"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(playback.SegmentDuration + 7*time.Second)

	progress := h.controller.Progress(h.clock.Now())
	if !reflect.DeepEqual(progress, []float64{1, 0.5, 0}) {
		t.Fatalf("unexpected progress %v", progress)
	}

	progress = h.controller.Progress(h.clock.Now().Add(time.Hour))
	if progress[1] != 1 {
		t.Fatalf("progress should be clamped, got %v", progress)
	}
}

func TestController_UpdateSegments(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil)
	h.service.EXPECT().RecordView(gomock.Any(), "c").Return(nil)

	err := h.controller.Open(context.Background(), selection("b"))
	if err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(7 * time.Second)

	// A newer story arrived, the opened one is still there so the countdown continues.
	h.controller.UpdateSegments(segments("a", "b", "c"))
	assertState(t, h.controller, playback.Playing, 1)

	progress := h.controller.Progress(h.clock.Now())
	if progress[1] != 0.5 {
		t.Fatalf("countdown should continue, got %v", progress)
	}

	h.clock.Advance(7 * time.Second)
	assertState(t, h.controller, playback.Playing, 2)
}

func TestController_UpdateSegments_OpenedStoryGone(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil)
	h.service.EXPECT().RecordView(gomock.Any(), "x").Return(nil)

	err := h.controller.Open(context.Background(), selection("b"))
	if err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(7 * time.Second)

	h.controller.UpdateSegments(segments("x", "y"))
	assertState(t, h.controller, playback.Playing, 0)

	progress := h.controller.Progress(h.clock.Now())
	if progress[0] != 0 {
		t.Fatalf("new segment should start from zero, got %v", progress)
	}
}

func TestController_ViewRecordedOncePerSegment(t *testing.T) {
	h := newHarness(t, viewer)

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil)
	h.service.EXPECT().RecordView(gomock.Any(), "a").Return(nil).Times(1)
	h.service.EXPECT().RecordView(gomock.Any(), "b").Return(nil).Times(1)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(playback.SegmentDuration)
	assertState(t, h.controller, playback.Playing, 1)

	// Re-entry jumps back to the opened story, which was already seen.
	h.controller.UpdateSegments(segments("a", "b"))
	assertState(t, h.controller, playback.Playing, 0)
}

func TestController_StaleTimer(t *testing.T) {
	h := newHarness(t, viewer)
	h.clock.leaky = true

	h.service.EXPECT().GetMutedUsers(gomock.Any()).Return([]int{}, nil).Times(2)
	h.service.EXPECT().ListOwnerSegments(gomock.Any(), owner).Return(segments("a", "b"), nil).Times(2)
	h.service.EXPECT().RecordView(gomock.Any(), "a").Return(nil).Times(2)

	err := h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(10 * time.Second)

	err = h.controller.Open(context.Background(), selection("a"))
	if err != nil {
		t.Fatal(err)
	}

	// The first session's timer still fires but must not move the second one.
	h.clock.Advance(4 * time.Second)
	assertState(t, h.controller, playback.Playing, 0)

	h.controller.Close()
	h.clock.Advance(time.Minute)

	s, _ := h.controller.State()
	if s != playback.Closed || h.closes() != 0 {
		t.Fatalf("expected silent close, got %s and %d", s, h.closes())
	}
}
