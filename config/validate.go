package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// ValidationError contains details about configuration validation failures
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors. Window dimensions are
// passed to the GUI runtime as given and are not checked here.
func Validate(cfg *Config, availableBackends []string) error {
	var errors ValidationErrors

	if cfg.Window.Backend == "" {
		errors = append(errors, ValidationError{
			Field:   "window.backend",
			Message: "backend is required",
		})
	} else if !slices.Contains(availableBackends, strings.ToLower(cfg.Window.Backend)) {
		errors = append(errors, ValidationError{
			Field:   "window.backend",
			Message: fmt.Sprintf("unknown backend: %s (available: %s)", cfg.Window.Backend, strings.Join(availableBackends, ", ")),
		})
	}

	if !slices.Contains(validLevels, strings.ToLower(cfg.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level: %s (must be one of %s)", cfg.Logging.Level, strings.Join(validLevels, ", ")),
		})
	}

	if cfg.Logging.BasePath != "" {
		if info, err := os.Stat(cfg.Logging.BasePath); err != nil || !info.IsDir() {
			errors = append(errors, ValidationError{
				Field:   "logging.base_path",
				Message: fmt.Sprintf("directory does not exist: %s", cfg.Logging.BasePath),
			})
		}
		if cfg.Logging.Filename == "" {
			errors = append(errors, ValidationError{
				Field:   "logging.filename",
				Message: "filename is required when base_path is set",
			})
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
