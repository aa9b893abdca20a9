package config

import (
	"fmt"
	"log/slog"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the config for invalid values and returns all errors found.
// Dangerous zero-values are clamped to safe defaults; other validation errors
// are logged as warnings but do not prevent the command from running.
func (c *Config) Validate() []error {
	var errs []error

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error)", c.LogLevel))
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format %q is not valid (use text or json)", c.LogFormat))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d is below minimum 1, clamping", c.Workers))
		c.Workers = 1
	} else if c.Workers > 64 {
		errs = append(errs, fmt.Errorf("workers %d exceeds maximum 64, clamping", c.Workers))
		c.Workers = 64
	}

	for _, err := range errs {
		slog.Warn("config validation", "error", err)
	}

	return errs
}
