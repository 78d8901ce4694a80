// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from YAML, decoded through their mapstructure tags and
// validated with go-playground/validator before any component sees them.
package config
