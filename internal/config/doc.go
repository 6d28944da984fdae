// Package config manages user-level settings stored at ~/.bbpm/config.yaml.
// It provides typed access to the filesystem root, HTTP timeout, user agent
// and cache staleness threshold, each overridable through BBPM_* environment
// variables.
package config
