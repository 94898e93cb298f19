// Package config loads and merges the go-folio server configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo (first non-zero value wins, in the order
// env → flags → JSON) and the final result is validated before use.
package config
