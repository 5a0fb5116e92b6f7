package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool
	Quiet    bool

	// Capture service
	Endpoint  string
	AccessKey string

	// Local browser engine
	ChromePath string
	Headless   bool
	Proxy      string
	UserAgent  string

	// Export
	OutputDir string
}

// Load builds a Config by combining defaults, environment variables, and
// CLI flags, in that order. The stored keyring credential and the
// build-time fallback are applied later by the application layer, so the
// access key here is empty unless a flag or the environment set one.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		JSONLog:   DefaultJSONLog,
		Endpoint:  DefaultEndpoint,
		Headless:  DefaultHeadless,
		OutputDir: DefaultOutputDir,
	}

	// Override from environment variables (simple helpers)
	if v := os.Getenv("SCREENSHOTGUN_ACCESS_KEY"); v != "" {
		cfg.AccessKey = v
	}
	if v := os.Getenv("SCREENSHOTGUN_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SCREENSHOTGUN_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCREENSHOTGUN_CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv("SCREENSHOTGUN_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("access-key"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.AccessKey = s
			}
		}
		if f := cmd.Flags().Lookup("endpoint"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Endpoint = s
			}
		}
		if f := cmd.Flags().Lookup("proxy"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Proxy = s
			}
		}
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("chrome-path"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.ChromePath = s
			}
		}
		if f := cmd.Flags().Lookup("output"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.OutputDir = s
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
		if f := cmd.Flags().Lookup("quiet"); f != nil {
			if f.Value.String() == "true" {
				cfg.Quiet = true
				cfg.LogLevel = "error"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
