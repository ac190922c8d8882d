package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort     = 16181
	DefaultTimezone = "Asia/Singapore"
	DefaultViewType = "minimal"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the configuration from path, or from the
// first of config.yml and ./config/config.yml that exists when path is empty.
func LoadAppConfig(path string) error {
	cfg, err := ReadAppConfig(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// ReadAppConfig is LoadAppConfig without touching the global Config.
func ReadAppConfig(path string) (AppConfig, error) {
	paths := []string{"config.yml", "./config/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	return ParseAppConfig(data)
}

// ParseAppConfig decodes YAML, applies defaults and validates the result.
func ParseAppConfig(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = DefaultTimezone
	}
	if cfg.Display.ViewType == "" {
		cfg.Display.ViewType = DefaultViewType
	}
}
