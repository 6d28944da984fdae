// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; forks edit it and rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	DefaultListURL string `yaml:"default_list_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:        "bbpm",
			DisplayName:    "bbpm",
			Description:    "Package manager for catalog-distributed script bundles",
			HomeDir:        ".bbpm",
			EnvPrefix:      "BBPM",
			GoModule:       "github.com/bbpm-labs/bbpm",
			DefaultListURL: "https://raw.githubusercontent.com/jojotastic777/bitburner-bbpm/master/.bbpm/package-list.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "bbpm").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".bbpm").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BBPM").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultListURL returns the package list URL seeded into a fresh sources file.
func DefaultListURL() string { load(); return defaults.DefaultListURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "BBPM_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
