// Package config loads and merges aimend configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (AIMEND_HOST, AIMEND_API_KEY, AIMEND_TIMEOUT_SECONDS)
//  3. Config file ($XDG_CONFIG_HOME/aimend/config.toml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key.
package config
