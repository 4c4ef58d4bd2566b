package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// APIKeyEnvVar supplies the API key when none is passed explicitly
	APIKeyEnvVar = "LUNCHMONEY_API_KEY"

	// DefaultBaseURL is the Lunch Money v1 API root
	DefaultBaseURL = "https://dev.lunchmoney.app/v1/"
)

// ErrMissingAPIKey is returned when neither an explicit key nor the environment provides one
var ErrMissingAPIKey = errors.New("The environment variable " + APIKeyEnvVar + " must be provided.")

// Env looks up an environment variable. Callers inject it so key resolution
// stays independent of process state.
type Env func(key string) (string, bool)

// OSEnv reads the process environment
func OSEnv() Env {
	return os.LookupEnv
}

// MapEnv serves lookups from a fixed map
func MapEnv(values map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

// ViperEnv serves lookups from a viper instance. The API key variable is
// answered from the "api_key" setting it is bound to.
func ViperEnv(v *viper.Viper) Env {
	return func(key string) (string, bool) {
		if key == APIKeyEnvVar {
			key = "api_key"
		}
		if !v.IsSet(key) {
			return "", false
		}
		return v.GetString(key), true
	}
}

// ResolveAPIKey returns explicit when non-empty, else the value of
// LUNCHMONEY_API_KEY from env, else ErrMissingAPIKey. An empty variable counts as missing.
func ResolveAPIKey(explicit string, env Env) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if env != nil {
		if key, ok := env(APIKeyEnvVar); ok && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), nil
		}
	}
	return "", ErrMissingAPIKey
}

// Config represents the client configuration
type Config struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Debug   bool          `mapstructure:"debug"`

	// Env is the lookup used to resolve the API key when APIKey is empty
	Env Env `mapstructure:"-"`
}

// LoadConfig loads the configuration. Any dotenv files given are loaded into
// the process environment first; missing files are skipped. Only the API key
// is read from the environment.
func LoadConfig(dotenvFiles ...string) (*Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	v := viper.New()
	setDefaultConfig(v)

	if err := v.BindEnv("api_key", APIKeyEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", APIKeyEnvVar, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	config.Env = ViperEnv(v)

	GetLogger().Debug(ComponentConfig, "Configuration loaded (base_url=%s, api_key set=%t)", config.BaseURL, config.APIKey != "")
	return &config, nil
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("debug", false)
}
