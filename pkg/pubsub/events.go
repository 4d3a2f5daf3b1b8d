package pubsub

type EventType int

const (
	EventTypeNewStory EventType = iota
	EventTypeStoryView
	EventTypeStoryMute
	EventTypeStoryDelete
)

type Event struct {
	Type   EventType              `json:"type"`
	Params map[string]interface{} `json:"params"`
}

// GetInt returns a numeric param. JSON decoding turns numbers into float64, so both forms are accepted.
func (e *Event) GetInt(key string) (int, bool) {
	switch val := e.Params[key].(type) {
	case int:
		return val, true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}

func NewStoryCreationEvent(id string, creator int) Event {
	return Event{
		Type:   EventTypeNewStory,
		Params: map[string]interface{}{"id": id, "creator": creator},
	}
}

func NewStoryViewEvent(id string, creator, viewer int) Event {
	return Event{
		Type:   EventTypeStoryView,
		Params: map[string]interface{}{"id": id, "creator": creator, "viewer": viewer},
	}
}

func NewStoryMuteEvent(viewer, owner int, muted bool) Event {
	return Event{
		Type:   EventTypeStoryMute,
		Params: map[string]interface{}{"viewer": viewer, "owner": owner, "muted": muted},
	}
}

func NewStoryDeleteEvent(id string, creator int) Event {
	return Event{
		Type:   EventTypeStoryDelete,
		Params: map[string]interface{}{"id": id, "creator": creator},
	}
}
