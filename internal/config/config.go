package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"

	"github.com/bbpm-labs/bbpm/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyRoot      = "root"
	KeyTimeout   = "timeout"
	KeyUserAgent = "user_agent"
	KeyMaxAge    = "max_age"
)

// Defaults.
const (
	DefaultTimeout = 30 * time.Second
	DefaultMaxAge  = 7 * 24 * time.Hour
)

// ErrUnknownKey is returned by Set for keys outside Keys.
var ErrUnknownKey = zerr.New("unknown config key")

// ErrInvalidValue is returned by Set when a value does not parse for its key.
var ErrInvalidValue = zerr.New("invalid config value")

// Keys lists every recognized key in display order.
func Keys() []string {
	return []string{KeyRoot, KeyTimeout, KeyUserAgent, KeyMaxAge}
}

// Dir returns the path to the bbpm config directory (~/.bbpm/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bbpm/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeyRoot, filepath.Join(Dir(), "root"))
	viper.SetDefault(KeyTimeout, DefaultTimeout.String())
	viper.SetDefault(KeyUserAgent, branding.CLIName())
	viper.SetDefault(KeyMaxAge, DefaultMaxAge.String())

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every recognized key with its effective value.
func All() map[string]string {
	out := make(map[string]string, len(Keys()))
	for _, k := range Keys() {
		out[k] = Get(k)
	}
	return out
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	known := false
	for _, k := range Keys() {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return zerr.With(fmt.Errorf("%w: %s", ErrUnknownKey, key), "valid", strings.Join(Keys(), ", "))
	}

	switch key {
	case KeyTimeout, KeyMaxAge:
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return zerr.With(fmt.Errorf("%w: %s must be a positive duration", ErrInvalidValue, key), "value", value)
		}
	case KeyRoot:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
		}
	}
	return nil
}

// Root returns the directory backing the package manager's filesystem, with
// a leading "~" expanded to the home directory.
func Root() string {
	root := Get(KeyRoot)
	if rest, ok := strings.CutPrefix(root, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return root
}

// Timeout returns the HTTP timeout, falling back to DefaultTimeout.
func Timeout() time.Duration {
	if d := viper.GetDuration(KeyTimeout); d > 0 {
		return d
	}
	return DefaultTimeout
}

// UserAgent returns the User-Agent sent with every request.
func UserAgent() string {
	if ua := Get(KeyUserAgent); ua != "" {
		return ua
	}
	return branding.CLIName()
}

// MaxAge returns how old the package-list cache may get before commands
// warn about it, falling back to DefaultMaxAge.
func MaxAge() time.Duration {
	if d := viper.GetDuration(KeyMaxAge); d > 0 {
		return d
	}
	return DefaultMaxAge
}
