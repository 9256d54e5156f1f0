package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

const maxScanConcurrency = 64

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateExtensions(config)...)
	validationErrors = append(validationErrors, validateResources(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateExtensions(config *Config) []string {
	var validationErrors []string
	for i, dir := range config.Extensions.Dirs {
		if strings.TrimSpace(dir) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("extensions.dirs[%d] must not be empty", i))
		}
	}
	if config.Extensions.ScanConcurrency < 1 || config.Extensions.ScanConcurrency > maxScanConcurrency {
		validationErrors = append(validationErrors,
			fmt.Sprintf("extensions.scan_concurrency must be between 1 and %d", maxScanConcurrency))
	}
	return validationErrors
}

func validateResources(config *Config) []string {
	if config.Resources.CacheEntries < 0 {
		return []string{"resources.cache_entries must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	return validationErrors
}

func validateHistory(config *Config) []string {
	if config.History.MaxEntries < 0 {
		return []string{"history.max_entries must be non-negative"}
	}
	return nil
}
