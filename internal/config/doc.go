// Package config loads, normalizes, and validates cardpress configuration
// from TOML, with SMTP credentials overlaid from the environment.
package config
