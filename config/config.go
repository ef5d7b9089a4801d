// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of a slate app,
// which can be saved to and opened from a TOML file.
package config

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"cogentcore.org/slate/base/errors"
	"cogentcore.org/slate/base/logx"
	"cogentcore.org/slate/fonts"
	"cogentcore.org/slate/gpu"
	"cogentcore.org/slate/text"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by the errors returned from [Config.Validate].
var ErrInvalid = errors.New("config: invalid")

// Config is the configuration of a slate app.
type Config struct {

	// Title is the title of the window.
	Title string `toml:"title"`

	// Width is the initial width of the window in screen coordinates.
	Width int `toml:"width"`

	// Height is the initial height of the window in screen coordinates.
	Height int `toml:"height"`

	// FontSize is the size of text in pixels, which is also the
	// distance between consecutive lines of text.
	FontSize float32 `toml:"font_size"`

	// Font is the name of the embedded font to use.
	Font string `toml:"font"`

	// Background is the hex color that the window is cleared to.
	Background string `toml:"background"`

	// Foreground is the hex color of text.
	Foreground string `toml:"foreground"`

	// PresentMode is the preferred present mode: one of fifo,
	// fifo-relaxed, immediate or mailbox. If it is empty or not
	// supported, the first mode the surface reports is used.
	PresentMode string `toml:"present_mode,omitempty"`

	// LogLevel is the minimum level of log messages that are printed:
	// debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Defaults sets the default values of the config.
func (c *Config) Defaults() {
	c.Title = "Slate"
	c.Width = 800
	c.Height = 600
	c.FontSize = 32
	c.Font = fonts.Default
	c.Background = "#1e1e2e"
	c.Foreground = "#ffffff"
	c.PresentMode = ""
	c.LogLevel = "info"
}

// New returns a new config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Open sets the config to its defaults and then decodes the given
// TOML file over them, so that the file only needs to set the
// values it changes.
func (c *Config) Open(filename string) error {
	c.Defaults()
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(c); err != nil {
		return fmt.Errorf("config: decoding %s: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given file as TOML.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Validate returns an error wrapping [ErrInvalid] for each invalid value.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height))
	}
	if c.FontSize <= 0 || c.FontSize > text.MaxSize {
		errs = append(errs, fmt.Errorf("%w: font size %g must be in (0, %d]", ErrInvalid, c.FontSize, text.MaxSize))
	}
	if c.Font != "" && !fonts.Has(c.Font) {
		errs = append(errs, fmt.Errorf("%w: unknown font %q (available: %s)", ErrInvalid, c.Font, strings.Join(fonts.Names(), ", ")))
	}
	if _, ok := gpu.PresentModes[c.PresentMode]; c.PresentMode != "" && !ok {
		errs = append(errs, fmt.Errorf("%w: unknown present mode %q", ErrInvalid, c.PresentMode))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: background: %w", ErrInvalid, err))
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		errs = append(errs, fmt.Errorf("%w: foreground: %w", ErrInvalid, err))
	}
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Size returns the window size as a point.
func (c *Config) Size() image.Point {
	return image.Pt(c.Width, c.Height)
}

// GPUOptions returns the options for the graphics context.
// The config must be valid.
func (c *Config) GPUOptions() *gpu.Options {
	o := gpu.DefaultOptions()
	o.FontSize = c.FontSize
	o.Font = c.Font
	o.Background = errors.Log1(ParseColor(c.Background))
	o.Foreground = errors.Log1(ParseColor(c.Foreground))
	o.PresentMode = c.PresentMode
	return o
}

// ParseColor parses a hex color such as "#1e1e2e" or "#fff"
// into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("parsing color %q: want #rgb or #rrggbb", s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}
