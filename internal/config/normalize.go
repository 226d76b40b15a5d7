package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeRender(); err != nil {
		return err
	}
	c.normalizeSMTP()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"paths.upload_dir", &c.Paths.UploadDir},
		{"paths.output_dir", &c.Paths.OutputDir},
		{"paths.assets_dir", &c.Paths.AssetsDir},
		{"paths.log_dir", &c.Paths.LogDir},
	}
	for _, field := range fields {
		trimmed := strings.TrimSpace(*field.value)
		if trimmed == "" {
			return fmt.Errorf("%s must not be empty", field.name)
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	c.Paths.Bind = strings.TrimSpace(c.Paths.Bind)
	return nil
}

func (c *Config) normalizeRender() error {
	font := strings.TrimSpace(c.Render.FontPath)
	if font == "" {
		font = defaultFontFile
	}
	// A bare filename resolves inside the assets directory.
	if !filepath.IsAbs(font) && !strings.HasPrefix(font, "~") {
		c.Render.FontPath = filepath.Join(c.Paths.AssetsDir, font)
		return nil
	}
	expanded, err := expandPath(font)
	if err != nil {
		return fmt.Errorf("render.font_path: %w", err)
	}
	c.Render.FontPath = expanded
	return nil
}

func (c *Config) normalizeSMTP() {
	c.SMTP.Host = strings.TrimSpace(c.SMTP.Host)
	c.SMTP.Username = strings.TrimSpace(c.SMTP.Username)
	c.SMTP.From = strings.TrimSpace(c.SMTP.From)
	if c.SMTP.Port == 0 {
		c.SMTP.Port = defaultSMTPPort
	}
	if c.SMTP.From == "" {
		c.SMTP.From = c.SMTP.Username
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
