package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// UpstreamConfig describes the admin console API the dashboard reads from.
type UpstreamConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	ServerTotalPath string `mapstructure:"server_total_path"`
	TicketPath      string `mapstructure:"ticket_path"`
	Token           string `mapstructure:"token"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	MaxRetries      int    `mapstructure:"max_retries"`
	RetryBaseMillis int    `mapstructure:"retry_base_millis"`
	RetryCapSeconds int    `mapstructure:"retry_cap_seconds"`
}

func (u *UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

func (u *UpstreamConfig) RetryBase() time.Duration {
	return time.Duration(u.RetryBaseMillis) * time.Millisecond
}

func (u *UpstreamConfig) RetryCap() time.Duration {
	return time.Duration(u.RetryCapSeconds) * time.Second
}

// QueryConfig controls the query cache sitting in front of the upstream API.
type QueryConfig struct {
	Backend          string `mapstructure:"backend"`
	StaleTimeSeconds int    `mapstructure:"stale_time_seconds"`
	KeyPrefix        string `mapstructure:"key_prefix"`
	PrefetchOnStart  bool   `mapstructure:"prefetch_on_start"`
	// InvalidateLimit caps invalidation requests per client per minute (redis backend only).
	InvalidateLimit int `mapstructure:"invalidate_limit_per_minute"`
	// RateLimitPrefix namespaces the limiter counters; it must not share KeyPrefix.
	RateLimitPrefix string `mapstructure:"ratelimit_prefix"`
}

func (q *QueryConfig) StaleTime() time.Duration {
	return time.Duration(q.StaleTimeSeconds) * time.Second
}

// RateLimitOverlapsCache reports whether clearing the query cache would also
// delete the rate limiter counters.
func (q *QueryConfig) RateLimitOverlapsCache() bool {
	return strings.HasPrefix(q.RateLimitPrefix, q.KeyPrefix)
}

func (q *QueryConfig) UseRedis() bool {
	return strings.EqualFold(q.Backend, "redis")
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig enables admin token checks when JWTSecret is non-empty.
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	CookieName string `mapstructure:"cookie_name"`
}

func (a *AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

type I18nConfig struct {
	DefaultLang string `mapstructure:"default_lang"`
}

type DashboardConfig struct {
	ByteUnits string `mapstructure:"byte_units"`
	TickCount int    `mapstructure:"tick_count"`
}
