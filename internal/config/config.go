// Package config loads runtime settings from an optional env file and the
// process environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/judgekit/team-fixtures/internal/database"
	"github.com/judgekit/team-fixtures/internal/logger"
)

type Config struct {
	Database database.Config `mapstructure:"database"`
	Log      logger.Config   `mapstructure:"log"`
	HTTP     HTTPConfig      `mapstructure:"http"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

// Load reads envFile when it exists and then resolves every setting from
// the environment, falling back to defaults. Keys map to variables by
// upper-casing and replacing dots, e.g. database.dsn -> DATABASE_DSN.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Database.ApplyDefaults()
	cfg.Log.ApplyDefaults()

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", database.DriverSQLite)
	v.SetDefault("database.dsn", "fixtures.db")
	v.SetDefault("database.max_retries", 3)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.slow_query_threshold", "200ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
	v.SetDefault("http.port", "8080")
}
