package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		fields []string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:   "length too small",
			modify: func(c *Config) { c.Pin.Length = 0 },
			fields: []string{"pin.length"},
		},
		{
			name:   "length too large",
			modify: func(c *Config) { c.Pin.Length = MaxLength + 1 },
			fields: []string{"pin.length"},
		},
		{
			name:   "unknown charset",
			modify: func(c *Config) { c.Pin.Charset = "hex" },
			fields: []string{"pin.charset"},
		},
		{
			name:   "placeholder longer than one character",
			modify: func(c *Config) { c.Pin.Placeholder = "__" },
			fields: []string{"pin.placeholder"},
		},
		{
			name:   "combining placeholder is one character",
			modify: func(c *Config) { c.Pin.Placeholder = "e\u0301" },
		},
		{
			name:   "empty secure char",
			modify: func(c *Config) { c.Pin.SecureChar = "" },
			fields: []string{"pin.secure_char"},
		},
		{
			name:   "negative delay",
			modify: func(c *Config) { c.Pin.SecureDelayMs = -1 },
			fields: []string{"pin.secure_delay_ms"},
		},
		{
			name:   "unknown style",
			modify: func(c *Config) { c.Style.Variant = "boxed" },
			fields: []string{"style.variant"},
		},
		{
			name:   "hash that is not bcrypt",
			modify: func(c *Config) { c.Verify.Hash = "1234" },
			fields: []string{"verify.hash"},
		},
		{
			name:   "negative attempts",
			modify: func(c *Config) { c.Verify.MaxAttempts = -2 },
			fields: []string{"verify.max_attempts"},
		},
		{
			name:   "log level is case-insensitive",
			modify: func(c *Config) { c.Logging.Level = "DEBUG" },
		},
		{
			name:   "unknown log level",
			modify: func(c *Config) { c.Logging.Level = "trace" },
			fields: []string{"logging.level"},
		},
		{
			name: "errors accumulate",
			modify: func(c *Config) {
				c.Pin.Length = -3
				c.Style.Variant = ""
				c.Logging.Level = "loud"
			},
			fields: []string{"pin.length", "logging.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()

			if len(errs) != len(tt.fields) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.fields), ValidationErrors(errs))
			}
			for i, field := range tt.fields {
				if errs[i].Field != field {
					t.Errorf("error %d field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "pin.length", Value: 0, Message: "must be between 1 and 32"}
	if got, want := err.Error(), "pin.length: must be between 1 and 32 (got: 0)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if got := ValidationErrors(nil).Error(); got != "" {
		t.Errorf("empty ValidationErrors.Error() = %q", got)
	}
	single := ValidationErrors{err}
	if got := single.Error(); got != err.Error() {
		t.Errorf("single ValidationErrors.Error() = %q", got)
	}
	multi := ValidationErrors{err, err}
	if !strings.Contains(multi.Error(), "  2. pin.length") {
		t.Errorf("multi ValidationErrors.Error() = %q", multi.Error())
	}
}
