package trackers

import (
	"fmt"
	"strconv"

	"github.com/dukex/mixpanel"

	"github.com/soapboxsocial/stories/pkg/pubsub"
	"github.com/soapboxsocial/stories/pkg/tracking"
)

const (
	StoryNew    = "story_new"
	StoryView   = "story_view"
	StoryMute   = "story_mute"
	StoryDelete = "story_delete"
)

type MixpanelTracker struct {
	client mixpanel.Mixpanel
}

func NewMixpanelTracker(client mixpanel.Mixpanel) *MixpanelTracker {
	return &MixpanelTracker{client: client}
}

func (m *MixpanelTracker) CanTrack(event *pubsub.Event) bool {
	return event.Type == pubsub.EventTypeNewStory ||
		event.Type == pubsub.EventTypeStoryView ||
		event.Type == pubsub.EventTypeStoryMute ||
		event.Type == pubsub.EventTypeStoryDelete
}

func (m *MixpanelTracker) Track(event *pubsub.Event) error {
	log := transform(event)
	if log == nil {
		return fmt.Errorf("invalid type for tracker: %d", event.Type)
	}

	return m.client.Track(log.ID, log.Name, &mixpanel.Event{IP: "0", Properties: log.Properties})
}

func transform(event *pubsub.Event) *tracking.Event {
	switch event.Type {
	case pubsub.EventTypeNewStory:
		id, ok := event.GetInt("creator")
		if !ok {
			return nil
		}

		return &tracking.Event{
			ID:   strconv.Itoa(id),
			Name: StoryNew,
			Properties: map[string]interface{}{
				"story_id": event.Params["id"],
			},
		}
	case pubsub.EventTypeStoryView:
		id, ok := event.GetInt("viewer")
		if !ok {
			return nil
		}

		return &tracking.Event{
			ID:   strconv.Itoa(id),
			Name: StoryView,
			Properties: map[string]interface{}{
				"story_id": event.Params["id"],
				"creator":  event.Params["creator"],
			},
		}
	case pubsub.EventTypeStoryMute:
		id, ok := event.GetInt("viewer")
		if !ok {
			return nil
		}

		return &tracking.Event{
			ID:   strconv.Itoa(id),
			Name: StoryMute,
			Properties: map[string]interface{}{
				"owner": event.Params["owner"],
				"muted": event.Params["muted"],
			},
		}
	case pubsub.EventTypeStoryDelete:
		id, ok := event.GetInt("creator")
		if !ok {
			return nil
		}

		return &tracking.Event{
			ID:   strconv.Itoa(id),
			Name: StoryDelete,
			Properties: map[string]interface{}{
				"story_id": event.Params["id"],
			},
		}
	}

	return nil
}
