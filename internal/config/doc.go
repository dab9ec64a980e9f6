// Package config loads and resolves stencil.toml.
//
// Values are layered as built-in defaults, then the config file, then
// STENCIL_* environment variables, then command-line flags. Resolve records
// which layer each field came from so that `stencil config show` can report
// it. Validate checks the resolved values and separates hard errors from
// warnings.
package config
