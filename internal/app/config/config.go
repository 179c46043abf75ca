package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost    string
	ServicePort    int
	GinMode        string
	LogLevel       string
	LogFormat      string
	SeedFile       string
	MetricsEnabled bool
	GzipEnabled    bool
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8000)
	v.SetDefault("GinMode", "release")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("SeedFile", "")
	v.SetDefault("MetricsEnabled", true)
	v.SetDefault("GzipEnabled", true)
	v.SetDefault("ReadTimeout", 10*time.Second)
	v.SetDefault("WriteTimeout", 10*time.Second)
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ONCO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.WithField("name", configName).Warn("config file not found, using defaults")
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

// ConfigureLogger применяет LogLevel и LogFormat к стандартному логгеру logrus.
func (c *Config) ConfigureLogger() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch c.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
