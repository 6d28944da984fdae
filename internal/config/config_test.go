package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := setupHome(t)
	Load()

	assert.Equal(t, filepath.Join(home, ".bbpm", "root"), Root())
	assert.Equal(t, DefaultTimeout, Timeout())
	assert.Equal(t, DefaultMaxAge, MaxAge())
	assert.Equal(t, "bbpm", UserAgent())
	assert.Equal(t, filepath.Join(home, ".bbpm", "config.yaml"), FilePath())
}

func TestSetPersists(t *testing.T) {
	setupHome(t)
	Load()

	require.NoError(t, Set(KeyTimeout, "5s"))
	require.NoError(t, Set(KeyRoot, "~/games"))

	_, err := os.Stat(FilePath())
	require.NoError(t, err)

	viper.Reset()
	Load()
	assert.Equal(t, 5*time.Second, Timeout())

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "games"), Root())
}

func TestSetRejects(t *testing.T) {
	setupHome(t)
	Load()

	tests := []struct {
		key, value string
		want       error
	}{
		{"colour", "red", ErrUnknownKey},
		{KeyTimeout, "soon", ErrInvalidValue},
		{KeyMaxAge, "-1h", ErrInvalidValue},
		{KeyRoot, " ", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := Set(tt.key, tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := os.Stat(FilePath())
	assert.True(t, os.IsNotExist(err), "rejected values must not create the config file")
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("BBPM_USER_AGENT", "tester")
	Load()

	assert.Equal(t, "tester", UserAgent())
	assert.Equal(t, "tester", All()[KeyUserAgent])
}
