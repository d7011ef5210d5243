// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, a dotenv file, config.yaml).
// It provides type-safe access to application settings while keeping
// configuration details separate from business logic.
package config
