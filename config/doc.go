// Package config loads gofetch settings from YAML, JSON or TOML files.
//
// It uses Viper to read the file and mapstructure hooks to decode durations
// ("5s"), comma separated lists and any type implementing
// encoding.TextUnmarshaler, such as codec.ContentType.
//
// # Usage
//
//	var settings fetch.Settings
//	err := config.Load("gofetch.yml", &settings)
//
// Without an explicit path, LoadConfig searches a few standard locations for
// "<name>.yml" or "<name>.yaml". Environment variables are not consulted.
//
// Viper lowercases map keys, so header names read from a file arrive in
// lower case. gofetch canonicalizes header names before use.
package config
