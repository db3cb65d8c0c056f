package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iw2rmb/pinfield/buffer"
	"github.com/iw2rmb/pinfield/internal/grapheme"
	"github.com/iw2rmb/pinfield/pinview"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "pin.length")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// MaxLength bounds pin.length; longer fields do not fit a terminal row.
const MaxLength = 32

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePin()...)
	errors = append(errors, c.validateStyle()...)
	errors = append(errors, c.validateVerify()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validatePin() []ValidationError {
	var errors []ValidationError

	if c.Pin.Length < 1 || c.Pin.Length > MaxLength {
		errors = append(errors, ValidationError{
			Field:   "pin.length",
			Value:   c.Pin.Length,
			Message: fmt.Sprintf("must be between 1 and %d", MaxLength),
		})
	}
	if _, ok := buffer.CharsetByName(c.Pin.Charset); !ok {
		errors = append(errors, ValidationError{
			Field:   "pin.charset",
			Value:   c.Pin.Charset,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(buffer.CharsetNames(), ", ")),
		})
	}
	if grapheme.Count(c.Pin.Placeholder) > 1 {
		errors = append(errors, ValidationError{
			Field:   "pin.placeholder",
			Value:   c.Pin.Placeholder,
			Message: "must be at most one character",
		})
	}
	if grapheme.Count(c.Pin.SecureChar) != 1 {
		errors = append(errors, ValidationError{
			Field:   "pin.secure_char",
			Value:   c.Pin.SecureChar,
			Message: "must be exactly one character",
		})
	}
	if c.Pin.SecureDelayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "pin.secure_delay_ms",
			Value:   c.Pin.SecureDelayMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateStyle() []ValidationError {
	if _, ok := pinview.StyleByName(c.Style.Variant); ok {
		return nil
	}
	return []ValidationError{{
		Field:   "style.variant",
		Value:   c.Style.Variant,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(pinview.StyleNames(), ", ")),
	}}
}

func (c *Config) validateVerify() []ValidationError {
	var errors []ValidationError

	if c.Verify.Hash != "" && !strings.HasPrefix(c.Verify.Hash, "$2") {
		errors = append(errors, ValidationError{
			Field:   "verify.hash",
			Value:   c.Verify.Hash,
			Message: "must be a bcrypt hash",
		})
	}
	if c.Verify.MaxAttempts < 0 {
		errors = append(errors, ValidationError{
			Field:   "verify.max_attempts",
			Value:   c.Verify.MaxAttempts,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level == "" || slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		return nil
	}
	return []ValidationError{{
		Field:   "logging.level",
		Value:   c.Logging.Level,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
	}}
}
