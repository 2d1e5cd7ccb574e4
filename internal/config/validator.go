package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"xbench/internal/parser"
)

// Validate checks configuration values and returns an error if any are
// invalid. It should be called after viper has loaded the configuration.
func Validate() error {
	var errors []string

	if name := viper.GetString("parser"); name != "" {
		if _, err := parser.Get(name); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if threshold := viper.GetFloat64("threshold"); threshold < 0 {
		errors = append(errors, fmt.Sprintf("threshold must be non-negative, got: %v", threshold))
	}

	switch backend := viper.GetString("history.backend"); backend {
	case "", "json", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("history.backend must be json or sqlite, got: %q", backend))
	}

	if port := viper.GetInt("metrics_port"); port < 0 || port > 65535 {
		errors = append(errors, fmt.Sprintf("metrics_port must be between 0 and 65535, got: %d", port))
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}
