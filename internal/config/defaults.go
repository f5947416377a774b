package config

import "time"

const (
	DefaultProviderCacheDuration = 24 * time.Hour
	DefaultProductCacheDuration  = time.Hour
	DefaultRequestTimeout        = 15 * time.Second
	DefaultGracefulTimeout       = 5 * time.Second
)

// defaults is flattened into viper so every key can be overridden by env.
var defaults = map[string]interface{}{
	"app.env":              "local",
	"app.name":             "go-kios-client",
	"app.version":          "1.0.0",
	"app.platform":         "android",
	"app.graceful_timeout": DefaultGracefulTimeout,
	"app.log_option":       "stdout",
	"app.log_level":        "",

	"api.base_url":        "http://localhost:8000",
	"api.retry_count":     2,
	"api.retry_wait_time": 200,
	"api.timeout":         DefaultRequestTimeout,

	"cache.provider_duration":            DefaultProviderCacheDuration,
	"cache.product_duration":             DefaultProductCacheDuration,
	"cache.background_refresh_threshold": time.Duration(0),

	"storage.driver":    "badger",
	"storage.dir":       "",
	"storage.in_memory": false,

	"redis.host":     "localhost",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,

	"biometric.default_prompt": "Verify your identity to proceed with the transaction",

	"exponential_backoff.initial_interval":   500 * time.Millisecond,
	"exponential_backoff.max_retries":        uint64(3),
	"exponential_backoff.max_backoff_time":   time.Minute,
	"exponential_backoff.backoff_multiplier": 2.0,

	"new_relic_license_key": "",
}
