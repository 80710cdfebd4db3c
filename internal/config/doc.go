// Package config loads the unitconv server configuration from a YAML file.
// Command-line flags override file values in cmd/unitconv.
package config
