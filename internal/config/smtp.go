package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	EnvSMTPHost           = "LEASEWATCH_SMTP_HOST"
	EnvSMTPPort           = "LEASEWATCH_SMTP_PORT"
	EnvSMTPSenderEmail    = "LEASEWATCH_SMTP_SENDER_EMAIL"
	EnvSMTPSenderPassword = "LEASEWATCH_SMTP_SENDER_PASSWORD"
	EnvSMTPSenderName     = "LEASEWATCH_SMTP_SENDER_NAME"
)

// SMTPConfig holds outbound mail delivery settings for expiry alerts.
type SMTPConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	SenderEmail    string `toml:"sender_email"`
	SenderPassword string `toml:"sender_password"`
	SenderName     string `toml:"sender_name"`
}

// Addr returns the host:port dial address.
func (c *SMTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Configured reports whether sender credentials are present. Alert
// dispatch is skipped when unconfigured.
func (c *SMTPConfig) Configured() bool {
	return c.SenderEmail != "" && c.SenderPassword != ""
}

// Finalize applies defaults, environment overrides, and validation.
func (c *SMTPConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *SMTPConfig) Merge(overlay *SMTPConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.SenderEmail != "" {
		c.SenderEmail = overlay.SenderEmail
	}
	if overlay.SenderPassword != "" {
		c.SenderPassword = overlay.SenderPassword
	}
	if overlay.SenderName != "" {
		c.SenderName = overlay.SenderName
	}
}

func (c *SMTPConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "smtp.gmail.com"
	}
	if c.Port == 0 {
		c.Port = 587
	}
	if c.SenderName == "" {
		c.SenderName = "LeaseWatch Alerts"
	}
}

func (c *SMTPConfig) loadEnv() {
	if v := os.Getenv(EnvSMTPHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvSMTPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvSMTPSenderEmail); v != "" {
		c.SenderEmail = v
	}
	if v := os.Getenv(EnvSMTPSenderPassword); v != "" {
		c.SenderPassword = v
	}
	if v := os.Getenv(EnvSMTPSenderName); v != "" {
		c.SenderName = v
	}
}

func (c *SMTPConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}
