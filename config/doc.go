// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Source URLs may point at HTTP endpoints or local files.
package config
