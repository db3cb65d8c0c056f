package config

import (
	"fmt"

	"github.com/iw2rmb/pinfield/buffer"
	"github.com/iw2rmb/pinfield/pinview"
)

// FieldConfig translates the pin and style sections into a pinview.Config.
// Callbacks, clipboard and logger are left for the caller.
func (c *Config) FieldConfig() (pinview.Config, error) {
	charset, ok := buffer.CharsetByName(c.Pin.Charset)
	if !ok {
		return pinview.Config{}, fmt.Errorf("unknown charset %q", c.Pin.Charset)
	}
	style, ok := pinview.StyleByName(c.Style.Variant)
	if !ok {
		return pinview.Config{}, fmt.Errorf("unknown style %q", c.Style.Variant)
	}

	fc := pinview.DefaultConfig()
	fc.Length = c.Pin.Length
	fc.Charset = charset
	fc.Placeholder = c.Pin.Placeholder
	fc.Secure = c.Pin.Secure
	fc.SecureChar = c.Pin.SecureChar
	fc.SecureDelay = c.Pin.SecureDelay()
	fc.MoveToPreviousOnDelete = c.Pin.MoveToPreviousOnDelete
	fc.BlurOnComplete = c.Pin.BlurOnComplete
	fc.Group = c.Pin.Group
	fc.Style = style
	return fc, nil
}
