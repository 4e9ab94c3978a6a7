package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string `mapstructure:"port"`
		TemplateDir string `mapstructure:"template_dir"`
	} `mapstructure:"server"`
	Database struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`
	Session struct {
		Backend  string `mapstructure:"backend"`
		TTLHours int    `mapstructure:"ttl_hours"`
	} `mapstructure:"session"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
}

func Load() *Config {
	viper.SetEnvPrefix("BLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("server.port")
	viper.BindEnv("server.template_dir")
	viper.BindEnv("database.driver")
	viper.BindEnv("database.dsn")
	viper.BindEnv("session.backend")
	viper.BindEnv("session.ttl_hours")
	viper.BindEnv("redis.addr")
	viper.BindEnv("redis.password")

	viper.SetDefault("server.port", "3456")
	viper.SetDefault("server.template_dir", "web/templates")
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "blog.db")
	viper.SetDefault("session.backend", "db")
	viper.SetDefault("session.ttl_hours", 24)
	viper.SetDefault("redis.addr", "localhost:6379")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("config: unable to decode: %v", err)
	}

	return &cfg
}
