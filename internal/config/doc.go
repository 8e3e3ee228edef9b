// Package config loads cap-tracker configuration from a YAML file with
// environment variable overrides for the secret-bearing fields.
package config
