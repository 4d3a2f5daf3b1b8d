package pubsub

import (
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
)

type Topic string

const StoryTopic Topic = "story"

type Queue struct {
	rdb *redis.Client
}

// NewQueue creates a new redis pubsub Queue.
func NewQueue(rdb *redis.Client) *Queue {
	return &Queue{
		rdb: rdb,
	}
}

// Publish an Event on a specific topic.
func (q *Queue) Publish(topic Topic, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return q.rdb.Publish(q.rdb.Context(), string(topic), data).Err()
}

// Subscribe to a list of topics. The returned channel is closed when the subscription ends.
func (q *Queue) Subscribe(topics ...Topic) <-chan *Event {
	t := make([]string, 0, len(topics))
	for _, topic := range topics {
		t = append(t, string(topic))
	}

	pubsub := q.rdb.Subscribe(q.rdb.Context(), t...)

	events := make(chan *Event, 100)
	go q.read(pubsub, events)

	return events
}

func (q *Queue) read(pubsub *redis.PubSub, events chan<- *Event) {
	defer close(events)

	for msg := range pubsub.Channel() {
		event := &Event{}
		err := json.Unmarshal([]byte(msg.Payload), event)
		if err != nil {
			logger.Log.Warn("failed to decode event", zap.String("channel", msg.Channel), zap.Error(err))
			continue
		}

		events <- event
	}
}
