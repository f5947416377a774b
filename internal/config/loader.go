package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/punyakios/go-kios-client/internal/common/validation"
)

const EnvPrefix = "GO_KIOS"

type loadOptions struct {
	fileName    string
	searchPaths []string
	envFiles    []string
}

type LoadOption func(*loadOptions)

func WithConfigFileName(name string) LoadOption {
	return func(o *loadOptions) { o.fileName = name }
}

func WithConfigFileSearchPaths(paths ...string) LoadOption {
	return func(o *loadOptions) { o.searchPaths = append(o.searchPaths, paths...) }
}

// WithEnvFiles loads dotenv files before reading the environment. Missing files are ignored.
func WithEnvFiles(files ...string) LoadOption {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// Load reads defaults, then an optional config file, then GO_KIOS_* env vars.
func Load(opts ...LoadOption) (Config, error) {
	o := &loadOptions{fileName: "config"}
	for _, opt := range opts {
		opt(o)
	}

	for _, f := range o.envFiles {
		// dotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(o.fileName)
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}

	if len(o.searchPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err = validation.ValidateStruct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
