package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	httpx "github.com/obsworks/telegraf-confd/pkg/http"
	"github.com/obsworks/telegraf-confd/pkg/log"
	"github.com/obsworks/telegraf-confd/pkg/metrics"
	"github.com/obsworks/telegraf-confd/pkg/pprof"
	"github.com/spf13/viper"
)

// AppConfig holds all configuration settings
type AppConfig struct {
	Storage StorageConfig         `mapstructure:"storage"`
	Log     log.Conf              `mapstructure:"log"`
	Http    httpx.Http            `mapstructure:"http"`
	Metrics metrics.MetricsConfig `mapstructure:"metrics"`
	Pprof   pprof.PprofConfig     `mapstructure:"pprof"`
}

// StorageConfig locates the record root directory
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

var (
	cfg  AppConfig
	once sync.Once
)

// NewConf loads the config file once and returns the parsed configuration.
func NewConf(confFile string) AppConfig {
	once.Do(func() {
		var err error
		cfg, err = loadConfigFile(confFile)
		if err != nil {
			panic(fmt.Sprintf("load config file error: %s", err))
		}
	})
	return cfg
}

func loadConfigFile(confFile string) (AppConfig, error) {
	config := viper.New()
	config.SetConfigFile(confFile)
	config.SetConfigType("toml")
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read configuration file: %v", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infow("The configuration changes, re-analyze the configuration file", "file", e.Name)
		if err := config.Unmarshal(&cfg); err != nil {
			log.Errorw("failed to unmarshal configuration file", "error", err)
		}
	})
	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	cfg.setDefaults()

	log.Infow("config file loaded",
		"path", confFile,
		"storage.dir", cfg.Storage.Dir,
	)

	return cfg, nil
}

func (c *AppConfig) setDefaults() {
	if c.Storage.Dir == "" {
		c.Storage.Dir = "./configs"
	}
	if c.Log.Output == "" {
		c.Log = *log.SetDefaults()
	}
	c.Http.SetDefaults()
	c.Metrics.SetDefaults()
	c.Pprof.SetDefaults()
}
