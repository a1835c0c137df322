package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"sweettracker-gateway/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// SweetTracker holds the tracking service configuration.
	SweetTracker SweetTrackerConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy configuration.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// SweetTrackerConfig holds the credentials and endpoint of the tracking service.
type SweetTrackerConfig struct {
	// APIKey is sent as the t_key query parameter on every request.
	APIKey string `mapstructure:"SWEETTRACKER_API_KEY" required:"true"`
	// BaseURL is the API root; relative endpoint paths are appended to it.
	BaseURL string `mapstructure:"SWEETTRACKER_BASE_URL" default:"http://info.sweettracker.co.kr/api/v1/"`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"SWEETTRACKER_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns TimeoutSeconds as a duration.
func (c SweetTrackerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProxyConfig holds the outbound HTTP proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Settings converts the configuration into proxy.Settings.
func (c ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  c.Enabled,
		Hostname: c.Hostname,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
	}
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" || key == ",squash" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired reports every field marked as required that still holds its zero value.
func validateRequired(config interface{}) error {
	missing := collectMissing(reflect.ValueOf(config))
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func collectMissing(val reflect.Value) []string {
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	var missing []string
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			missing = append(missing, collectMissing(val.Field(i))...)
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			missing = append(missing, field.Tag.Get("mapstructure"))
		}
	}
	return missing
}
