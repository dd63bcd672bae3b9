// Package config loads, normalizes, and validates CLI configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// WALLHAVEN_API_KEY, optionally sourced from a local .env file. The Config
// type centralizes every knob the commands need: API credentials, request
// pacing, output format, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
