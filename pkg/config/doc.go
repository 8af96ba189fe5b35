// Package config loads the settings the URL helpers read (static root,
// routes, an optional OpenAPI document) from YAML or TOML files and the
// environment.
package config
