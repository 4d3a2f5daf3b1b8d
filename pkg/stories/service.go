package stories

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/images"
	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/media"
	"github.com/soapboxsocial/stories/pkg/mutes"
	"github.com/soapboxsocial/stories/pkg/pubsub"
	"github.com/soapboxsocial/stories/pkg/users/types"
	"github.com/soapboxsocial/stories/pkg/views"
)

// TTL is how long a story stays visible after it was created.
const TTL = 24 * time.Hour

//go:generate mockgen -destination=../../mocks/stories_mock.go -package=mocks . StoryStore,MuteRegistry,ViewLedger,ProfileDirectory,Publisher

type StoryStore interface {
	AddStory(ctx context.Context, story *Story) error
	GetStory(ctx context.Context, id string) (*Story, error)
	GetActiveStories(ctx context.Context, since time.Time) ([]*Story, error)
	GetStoriesForUser(ctx context.Context, user int, since time.Time) ([]*Story, error)
	DeleteStory(ctx context.Context, id string, user int) (*Story, error)
	DeleteExpired(ctx context.Context, before time.Time) ([]*Story, error)
}

type MuteRegistry interface {
	Toggle(ctx context.Context, viewer, owner int) (bool, error)
	GetMutedBy(ctx context.Context, viewer int) ([]int, error)
}

type ViewLedger interface {
	Record(ctx context.Context, story string, viewer int, at time.Time) (bool, error)
	GetViews(ctx context.Context, story string) ([]*views.View, error)
	GetViewedStoryIDs(ctx context.Context, viewer int) ([]string, error)
}

type ProfileDirectory interface {
	ProfilesByID(ctx context.Context, ids []int) (map[int]*types.User, error)
}

type Publisher interface {
	Publish(topic pubsub.Topic, event pubsub.Event) error
}

// Service answers every story query and mutation on behalf of an authenticated user.
type Service struct {
	stories  StoryStore
	mutes    MuteRegistry
	views    ViewLedger
	profiles ProfileDirectory
	storage  media.Storage
	queue    Publisher

	now func() time.Time
}

func NewService(
	stories StoryStore,
	mutes MuteRegistry,
	views ViewLedger,
	profiles ProfileDirectory,
	storage media.Storage,
	queue Publisher,
) *Service {
	return &Service{
		stories:  stories,
		mutes:    mutes,
		views:    views,
		profiles: profiles,
		storage:  storage,
		queue:    queue,
		now:      time.Now,
	}
}

// WithClock replaces the time source used to stamp new stories and views.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListVisibleStories returns the roster of story groups viewer may see at now.
func (s *Service) ListVisibleStories(ctx context.Context, viewer int, now time.Time) ([]*Group, error) {
	if viewer <= 0 {
		return nil, ErrUnauthorized
	}

	since := now.Add(-TTL)

	stories, err := s.stories.GetActiveStories(ctx, since)
	if err != nil {
		return nil, unavailable(err, "failed to get active stories")
	}

	active := make([]*Story, 0, len(stories))
	for _, story := range stories {
		if !story.CreatedAt.Before(since) {
			active = append(active, story)
		}
	}

	muted, err := s.mutes.GetMutedBy(ctx, viewer)
	if err != nil {
		return nil, unavailable(err, "failed to get mutes")
	}

	profiles, err := s.profiles.ProfilesByID(ctx, Owners(active))
	if err != nil {
		return nil, unavailable(err, "failed to get profiles")
	}

	return Roster(viewer, active, muted, profiles), nil
}

// ListOwnerSegments returns the active stories of owner, oldest first.
func (s *Service) ListOwnerSegments(ctx context.Context, owner int, now time.Time) ([]*Story, error) {
	if owner <= 0 {
		return nil, ErrInvalid
	}

	since := now.Add(-TTL)

	stories, err := s.stories.GetStoriesForUser(ctx, owner, since)
	if err != nil {
		return nil, unavailable(err, "failed to get stories for user")
	}

	active := make([]*Story, 0, len(stories))
	for _, story := range stories {
		if !story.CreatedAt.Before(since) {
			active = append(active, story)
		}
	}

	return active, nil
}

// RecordView notes that viewer has seen a story. Repeated views and views of one's own stories
// leave the ledger untouched.
func (s *Service) RecordView(ctx context.Context, viewer int, id string) error {
	if viewer <= 0 {
		return ErrUnauthorized
	}

	story, err := s.getStory(ctx, id)
	if err != nil {
		return err
	}

	if story.UserID == viewer {
		return nil
	}

	created, err := s.views.Record(ctx, story.ID, viewer, s.now())
	if errors.Is(err, views.ErrUnknownUser) {
		return ErrUserNotFound
	}

	if err != nil {
		return unavailable(err, "failed to record view")
	}

	if !created {
		return nil
	}

	viewsRecorded.Inc()
	s.publish(pubsub.NewStoryViewEvent(story.ID, story.UserID, viewer))

	return nil
}

// ToggleMute flips whether viewer sees the stories of owner and returns the new state.
func (s *Service) ToggleMute(ctx context.Context, viewer, owner int) (bool, error) {
	if viewer <= 0 {
		return false, ErrUnauthorized
	}

	if owner <= 0 || owner == viewer {
		return false, errors.Wrap(ErrInvalid, "cannot mute yourself")
	}

	muted, err := s.mutes.Toggle(ctx, viewer, owner)
	if errors.Is(err, mutes.ErrContended) {
		return false, errors.Wrap(ErrConflict, err.Error())
	}

	if errors.Is(err, mutes.ErrUnknownUser) {
		return false, ErrUserNotFound
	}

	if err != nil {
		return false, unavailable(err, "failed to toggle mute")
	}

	mutesToggled.WithLabelValues(muteLabel(muted)).Inc()
	s.publish(pubsub.NewStoryMuteEvent(viewer, owner, muted))

	return muted, nil
}

// GetStoryViewSummary lists the viewers of a story, first viewer first.
func (s *Service) GetStoryViewSummary(ctx context.Context, id string) (*ViewSummary, error) {
	if id == "" {
		return nil, ErrInvalid
	}

	facts, err := s.views.GetViews(ctx, id)
	if err != nil {
		return nil, unavailable(err, "failed to get views")
	}

	ids := make([]int, 0, len(facts))
	for _, fact := range facts {
		ids = append(ids, fact.ViewerID)
	}

	profiles, err := s.profiles.ProfilesByID(ctx, ids)
	if err != nil {
		return nil, unavailable(err, "failed to get profiles")
	}

	viewers := make([]*Viewer, 0, len(facts))
	for _, fact := range facts {
		profile, ok := profiles[fact.ViewerID]
		if !ok || profile == nil {
			continue
		}

		viewers = append(viewers, &Viewer{User: *profile, ViewedAt: fact.CreatedAt})
	}

	return &ViewSummary{Count: len(viewers), Viewers: viewers}, nil
}

// CreateStory records a story for owner pointing at already stored media.
func (s *Service) CreateStory(ctx context.Context, owner int, mediaURL string) (*Story, error) {
	if owner <= 0 {
		return nil, ErrUnauthorized
	}

	if mediaURL == "" {
		return nil, errors.Wrap(ErrInvalid, "missing media")
	}

	now := s.now().UTC()
	id, err := ksuid.NewRandomWithTime(now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate id")
	}

	story := &Story{
		ID:        id.String(),
		UserID:    owner,
		MediaURL:  mediaURL,
		CreatedAt: now,
	}

	err = s.stories.AddStory(ctx, story)
	if err != nil {
		return nil, unavailable(err, "failed to add story")
	}

	storiesCreated.Inc()
	s.publish(pubsub.NewStoryCreationEvent(story.ID, owner))

	return story, nil
}

// UploadStory stores image and creates a story for it. The image is removed again when the
// story cannot be created.
func (s *Service) UploadStory(ctx context.Context, owner int, image []byte) (*Story, error) {
	if owner <= 0 {
		return nil, ErrUnauthorized
	}

	png, err := images.ToPNG(image)
	if err != nil {
		return nil, errors.Wrap(ErrInvalid, err.Error())
	}

	handle, err := s.storage.Store(ctx, png)
	if err != nil {
		return nil, unavailable(err, "failed to store media")
	}

	story, err := s.CreateStory(ctx, owner, s.storage.URL(handle))
	if err != nil {
		rmErr := s.storage.Remove(ctx, handle)
		if rmErr != nil {
			logger.Log.Error("failed to remove orphaned media", zap.String("handle", handle), zap.Error(rmErr))
		}

		return nil, err
	}

	return story, nil
}

// DeleteStory removes a story owned by owner together with its media.
func (s *Service) DeleteStory(ctx context.Context, owner int, id string) error {
	if owner <= 0 {
		return ErrUnauthorized
	}

	story, err := s.stories.DeleteStory(ctx, id, owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}

	if err != nil {
		return unavailable(err, "failed to delete story")
	}

	s.removeMedia(ctx, story)
	s.publish(pubsub.NewStoryDeleteEvent(story.ID, owner))

	return nil
}

// GetMutedUsers returns the owners viewer has muted.
func (s *Service) GetMutedUsers(ctx context.Context, viewer int) ([]int, error) {
	if viewer <= 0 {
		return nil, ErrUnauthorized
	}

	muted, err := s.mutes.GetMutedBy(ctx, viewer)
	if err != nil {
		return nil, unavailable(err, "failed to get mutes")
	}

	return muted, nil
}

// GetViewedStoryIDs returns the IDs of every story viewer has seen.
func (s *Service) GetViewedStoryIDs(ctx context.Context, viewer int) ([]string, error) {
	if viewer <= 0 {
		return nil, ErrUnauthorized
	}

	ids, err := s.views.GetViewedStoryIDs(ctx, viewer)
	if err != nil {
		return nil, unavailable(err, "failed to get viewed stories")
	}

	return ids, nil
}

// PurgeExpired deletes the stories that expired before now along with their media and returns
// how many were removed. Views are kept.
func (s *Service) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.stories.DeleteExpired(ctx, now.Add(-TTL))
	if err != nil {
		return 0, unavailable(err, "failed to delete expired stories")
	}

	for _, story := range expired {
		s.removeMedia(ctx, story)
	}

	storiesPurged.Add(float64(len(expired)))

	return len(expired), nil
}

func (s *Service) getStory(ctx context.Context, id string) (*Story, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	story, err := s.stories.GetStory(ctx, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, unavailable(err, "failed to get story")
	}

	return story, nil
}

func (s *Service) removeMedia(ctx context.Context, story *Story) {
	handle, err := s.storage.Handle(story.MediaURL)
	if err != nil {
		logger.Log.Warn("media not owned by storage", zap.String("story", story.ID), zap.Error(err))
		return
	}

	err = s.storage.Remove(ctx, handle)
	if err != nil {
		logger.Log.Error("failed to remove media", zap.String("story", story.ID), zap.Error(err))
	}
}

func (s *Service) publish(event pubsub.Event) {
	if s.queue == nil {
		return
	}

	err := s.queue.Publish(pubsub.StoryTopic, event)
	if err != nil {
		logger.Log.Error("queue.Publish failed", zap.Error(err))
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "muted"
	}

	return "unmuted"
}
