// Package config handles configuration management for physq.
// It layers the embedded defaults, a TOML or YAML config file, PHYSQ_*
// environment variables and command line overrides with koanf, and turns
// the result into a unit registry ready for use.
package config
