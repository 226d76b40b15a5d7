package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSMTP(); err != nil {
		return err
	}
	if err := c.validateOutbox(); err != nil {
		return err
	}
	if err := c.validateJanitor(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.Bind == "" {
		return errors.New("paths.bind must be set")
	}
	if c.Paths.UploadDir == c.Paths.OutputDir {
		return errors.New("paths.upload_dir and paths.output_dir must differ")
	}
	return nil
}

func (c *Config) validateSMTP() error {
	if !c.MailEnabled() {
		return nil
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port %d out of range", c.SMTP.Port)
	}
	if c.SMTP.From == "" {
		return errors.New("smtp.from (or smtp.username / SMTP_USER) must be set when smtp.host is configured")
	}
	return nil
}

func (c *Config) validateOutbox() error {
	if !c.Outbox.Enabled {
		return nil
	}
	if err := ensurePositiveMap(map[string]int{
		"outbox.drain_interval":  c.Outbox.DrainInterval,
		"outbox.max_attempts":    c.Outbox.MaxAttempts,
		"outbox.backoff_seconds": c.Outbox.BackoffSeconds,
		"outbox.batch_limit":     c.Outbox.BatchLimit,
	}); err != nil {
		return err
	}
	if !c.MailEnabled() {
		return errors.New("outbox.enabled requires smtp.host to be configured")
	}
	return nil
}

func (c *Config) validateJanitor() error {
	if c.Janitor.Enabled && c.Janitor.IntervalHours <= 0 {
		return errors.New("janitor.interval_hours must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
