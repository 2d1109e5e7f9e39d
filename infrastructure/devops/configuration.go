package devops

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	DSN            string `yaml:"dsn"`
	MaxConnections int    `yaml:"maxConnections"`
}

type AuthConfig struct {
	SigningSecret string `yaml:"signingSecret"` // base64
}

type SlackConfig struct {
	Token          string `yaml:"token"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Slack    SlackConfig    `yaml:"slack"`
}

var (
	once    sync.Once
	cfg     Config
	loadErr error
)

// LoadConfig reads the YAML config once. The path comes from
// TIMEWISE_CONFIG, defaulting to config.yaml; DSN and secret may be
// overridden by environment for container deployments.
func LoadConfig() (Config, error) {
	once.Do(func() {
		path := os.Getenv("TIMEWISE_CONFIG")
		if path == "" {
			path = "config.yaml"
		}

		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		if dsn := os.Getenv("DSN"); dsn != "" {
			cfg.Database.DSN = dsn
		}
		if secret := os.Getenv("TIMEWISE_SIGNING_SECRET"); secret != "" {
			cfg.Auth.SigningSecret = secret
		}
		if cfg.Database.MaxConnections == 0 {
			cfg.Database.MaxConnections = 10
		}
		if cfg.Server.Addr == "" {
			cfg.Server.Addr = "0.0.0.0:8090"
		}
	})

	return cfg, loadErr
}
