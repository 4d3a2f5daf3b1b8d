package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/pubsub"
	"github.com/soapboxsocial/stories/pkg/redis"
	"github.com/soapboxsocial/stories/pkg/stories"
)

var purge = &cobra.Command{
	Use:   "purge",
	Short: "deletes expired stories and their media",
	RunE:  runPurge,
}

var schedule string

func init() {
	purge.Flags().StringVarP(&schedule, "schedule", "s", "", "cron schedule, runs once when empty")
}

func runPurge(*cobra.Command, []string) error {
	config, err := load()
	if err != nil {
		return err
	}

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewRedis(config.Redis)

	service, err := newService(ctx, config, pubsub.NewQueue(rdb))
	if err != nil {
		return err
	}

	purger := stories.NewPurger(service, redis.NewLockStore(rdb))

	if schedule == "" {
		_, err := purger.Run(ctx, time.Now())
		return err
	}

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		_, err := purger.Run(ctx, time.Now())
		if err != nil {
			logger.Log.Error("purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return errors.Wrap(err, "invalid schedule")
	}

	c.Start()
	logger.Log.Info("purge scheduled", zap.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}
