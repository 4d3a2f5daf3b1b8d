package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/soapboxsocial/stories/pkg/conf"
	"github.com/soapboxsocial/stories/pkg/logger"
)

type Conf struct {
	DB       conf.PostgresConf `mapstructure:"db"`
	Redis    conf.RedisConf    `mapstructure:"redis"`
	API      conf.AddrConf     `mapstructure:"api"`
	Media    conf.MediaConf    `mapstructure:"media"`
	Log      conf.LogConf      `mapstructure:"log"`
	Mixpanel struct {
		Token string `mapstructure:"token"`
		URL   string `mapstructure:"url"`
	} `mapstructure:"mixpanel"`
}

var (
	file string

	rootCmd = &cobra.Command{
		Use:   "stories",
		Short: "Soapbox Stories",
		Long:  "",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&file, "config", "c", "config.toml", "config file")

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(purge)
	rootCmd.AddCommand(tracker)
	rootCmd.AddCommand(watch)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func load() (*Conf, error) {
	config := &Conf{}
	err := conf.Load(file, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	err = logger.Initialize(config.Log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}

	return config, nil
}
