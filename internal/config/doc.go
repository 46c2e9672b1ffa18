// Package config resolves the togglit command's settings from defaults,
// environment variables, an optional YAML file and command-line flags.
package config
