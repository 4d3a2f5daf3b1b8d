package cmd

import (
	"github.com/dukex/mixpanel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/pubsub"
	"github.com/soapboxsocial/stories/pkg/redis"
	"github.com/soapboxsocial/stories/pkg/tracking/trackers"
)

var tracker = &cobra.Command{
	Use:   "tracker",
	Short: "forwards story events to mixpanel",
	RunE:  runTracker,
}

func runTracker(*cobra.Command, []string) error {
	config, err := load()
	if err != nil {
		return err
	}

	defer logger.Sync()

	client := mixpanel.New(config.Mixpanel.Token, config.Mixpanel.URL)
	mt := trackers.NewMixpanelTracker(client)

	rdb := redis.NewRedis(config.Redis)
	queue := pubsub.NewQueue(rdb)

	events := queue.Subscribe(pubsub.StoryTopic)

	for evt := range events {
		if !mt.CanTrack(evt) {
			continue
		}

		err := mt.Track(evt)
		if err != nil {
			logger.Log.Warn("tracker.Track failed", zap.Error(err))
		}
	}

	return nil
}
