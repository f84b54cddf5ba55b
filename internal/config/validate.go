package config

import (
	"fmt"
	"strings"
)

const minSessionSecretLen = 32

// devSessionSecret mirrors the env-default on AuthConfig.SessionSecret.
const devSessionSecret = "dev-secret-change-in-production-32bytes"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Required && len(c.Auth.SessionSecret) < minSessionSecretLen {
		return fmt.Errorf("auth.session_secret must be at least %d characters (got %d)", minSessionSecretLen, len(c.Auth.SessionSecret))
	}
	if c.Auth.Required && c.Auth.SessionSecret == devSessionSecret {
		return fmt.Errorf("auth.session_secret is the built-in development value; set SESSION_SECRET")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.RateLimit.InquiriesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.inquiries_per_minute must be > 0 (got %d)", c.RateLimit.InquiriesPerMinute)
	}
	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}

func (r *ReportConfig) validate() error {
	if r.TopUpdatersLimit <= 0 {
		return fmt.Errorf("top_updaters_limit must be > 0 (got %d)", r.TopUpdatersLimit)
	}
	r.BurnedStatuses = ParseStatusList(r.BurnedStatusesRaw)
	return nil
}

// ParseStatusList splits a comma-separated list of status labels,
// normalising each to trimmed lower case and dropping duplicates.
func ParseStatusList(raw string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range splitList(raw) {
		s = strings.ToLower(s)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
