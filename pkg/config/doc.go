// Package config handles configuration management for gen-remix.
// It layers embedded defaults, the JSON or YAML configuration document,
// GEN_REMIX_* environment variables and command-line flags with koanf, and
// decodes the override section in document order.
package config
