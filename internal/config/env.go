package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors the environment variables the original deployment used
// for mail credentials. Secrets stay out of the config file.
type envOverrides struct {
	Host     string `env:"SMTP_SERVER"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if overrides.Host != "" {
		c.SMTP.Host = overrides.Host
	}
	if overrides.Port != 0 {
		c.SMTP.Port = overrides.Port
	}
	if overrides.Username != "" {
		c.SMTP.Username = overrides.Username
	}
	if overrides.Password != "" {
		c.SMTP.Password = overrides.Password
	}
	if overrides.From != "" {
		c.SMTP.From = overrides.From
	}
	return nil
}
