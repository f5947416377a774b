package config

import (
	"time"
)

type (
	Config struct {
		App                App                      `json:"app"`
		API                HTTPConfiguration        `json:"api"`
		Cache              CacheConfig              `json:"cache"`
		Storage            StorageConfig            `json:"storage"`
		Redis              Redis                    `json:"redis"`
		Biometric          BiometricConfig          `json:"biometric"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
		NewRelicLicenseKey string                   `json:"new_relic_license_key"`
	}

	App struct {
		Env             string        `json:"env"`
		Name            string        `json:"name" validate:"required"`
		Version         string        `json:"version"`
		Platform        string        `json:"platform" validate:"oneof=android ios"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	// HTTPConfiguration configures the storefront API clients.
	// RetryCount only applies to read-only catalog requests, money-moving
	// requests are always dispatched once.
	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url" validate:"required,url"`
		RetryCount    int           `json:"retry_count" validate:"gte=0"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}

	CacheConfig struct {
		// ProviderDuration is how long a provider list stays usable.
		ProviderDuration time.Duration `json:"provider_duration"`

		// ProductDuration is how long a per-provider product list stays usable.
		ProductDuration time.Duration `json:"product_duration"`

		// BackgroundRefreshThreshold is the age after which a usable entry is
		// refreshed silently. Zero means min(duration/2, 1h).
		BackgroundRefreshThreshold time.Duration `json:"background_refresh_threshold"`
	}

	StorageConfig struct {
		// Driver is either "badger" (on-device) or "redis".
		Driver   string `json:"driver" validate:"oneof=badger redis"`
		Dir      string `json:"dir"`
		InMemory bool   `json:"in_memory"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	BiometricConfig struct {
		DefaultPrompt string `json:"default_prompt"`
	}

	ExponentialBackOffConfig struct {
		InitialInterval   time.Duration `json:"initial_interval"`
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}
)
