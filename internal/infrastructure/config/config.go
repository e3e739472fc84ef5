package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/statsboard/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Upstream  sharedConfig.UpstreamConfig  `mapstructure:"upstream"`
	Query     sharedConfig.QueryConfig     `mapstructure:"query"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	I18n      sharedConfig.I18nConfig      `mapstructure:"i18n"`
	Dashboard sharedConfig.DashboardConfig `mapstructure:"dashboard"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (when present) and STATSBOARD_* environment
// variables. An explicit file path takes precedence over the search paths.
func Load(env, file string) (*Config, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("STATSBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "debug")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Upstream console API
	v.SetDefault("upstream.base_url", "http://localhost:8080")
	v.SetDefault("upstream.server_total_path", "/v1/admin/console/server")
	v.SetDefault("upstream.ticket_path", "/v1/admin/console/ticket")
	v.SetDefault("upstream.token", "")
	v.SetDefault("upstream.timeout_seconds", 10)
	v.SetDefault("upstream.max_retries", 3)
	v.SetDefault("upstream.retry_base_millis", 1000)
	v.SetDefault("upstream.retry_cap_seconds", 30)

	// Query cache
	v.SetDefault("query.backend", "memory")
	v.SetDefault("query.stale_time_seconds", 30)
	v.SetDefault("query.key_prefix", "statsboard:query:")
	v.SetDefault("query.prefetch_on_start", false)
	v.SetDefault("query.invalidate_limit_per_minute", 10)
	v.SetDefault("query.ratelimit_prefix", "statsboard:ratelimit:")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Auth (disabled unless a secret is configured)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.cookie_name", "token")

	v.SetDefault("i18n.default_lang", "en")

	v.SetDefault("dashboard.byte_units", "iec")
	v.SetDefault("dashboard.tick_count", 5)
}
