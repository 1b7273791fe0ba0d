// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultDesignatedAdmins are the compiled-in designated admin emails.
// These accounts self-provision a super-admin row on first login.
var DefaultDesignatedAdmins = []string{
	"avinash.anusuri@voidlabs.in",
	"gowrish.jamili@voidlabs.in",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"CROSSSTACK_DB_PATH" envDefault:"./data/crossstack.db"`
	SessionSecret string `env:"CROSSSTACK_SESSION_SECRET,required"`
	ServerHost    string `env:"CROSSSTACK_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"CROSSSTACK_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"CROSSSTACK_ENV" envDefault:"development"`
	LogLevel      string `env:"CROSSSTACK_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"CROSSSTACK_LOG_FORMAT" envDefault:"text"`
	SiteName      string `env:"CROSSSTACK_SITE_NAME" envDefault:"CrossStack"`
	SiteURL       string `env:"CROSSSTACK_SITE_URL" envDefault:"http://localhost:8080"`

	// DesignatedAdmins overrides the compiled-in designated admin allow-list.
	DesignatedAdmins []string `env:"CROSSSTACK_DESIGNATED_ADMINS" envSeparator:","`

	// Seeding configuration
	DoSeed bool `env:"CROSSSTACK_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// DesignatedAdminEmails returns the designated admin allow-list, lowercased.
// Falls back to the compiled-in defaults when no override is configured.
func (c Config) DesignatedAdminEmails() []string {
	emails := c.DesignatedAdmins
	if len(emails) == 0 {
		emails = DefaultDesignatedAdmins
	}
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("CROSSSTACK_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	return cfg, nil
}
