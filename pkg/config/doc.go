// Package config defines the YAML configuration for passfort and its
// loading pipeline: parse, apply defaults, apply PASSFORT_* environment
// overrides, validate.
//
// Configuration is optional for the CLI; when no file exists at the
// given path, the defaults are used as-is.
package config
