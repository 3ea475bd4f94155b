// Package config loads bar settings from TOML files.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/srediag/wob-shm/pkg/canvas"
	"github.com/srediag/wob-shm/pkg/color"
)

const (
	defaultWidth        = 400
	defaultHeight       = 50
	defaultBorderOffset = 4
	defaultBorderSize   = 4
	defaultBarPadding   = 4
	defaultMaximum      = 100
)

// Config is the on-disk description of a bar.
type Config struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	BorderOffset int     `toml:"border_offset"`
	BorderSize   int     `toml:"border_size"`
	BarPadding   int     `toml:"bar_padding"`
	Orientation  string  `toml:"orientation"`
	CornerRadius float64 `toml:"corner_radius"`
	Maximum      uint64  `toml:"max"`

	BackgroundColor string `toml:"background_color"`
	BorderColor     string `toml:"border_color"`
	BarColor        string `toml:"bar_color"`

	Shm ShmConfig `toml:"shm"`
}

// ShmConfig controls where the image's shm object is created.
type ShmConfig struct {
	Dir        string `toml:"dir"`
	Prefix     string `toml:"prefix"`
	ProbeLimit int    `toml:"probe_limit"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Width:           defaultWidth,
		Height:          defaultHeight,
		BorderOffset:    defaultBorderOffset,
		BorderSize:      defaultBorderSize,
		BarPadding:      defaultBarPadding,
		Orientation:     canvas.Horizontal.String(),
		CornerRadius:    canvas.DefaultRadius,
		Maximum:         defaultMaximum,
		BackgroundColor: "000000FF",
		BorderColor:     "FFFFFFFF",
		BarColor:        "FFFFFFFF",
	}
}

// Load decodes path over the defaults and verifies the result.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := VerifyConfig(c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// VerifyConfig checks that the geometry leaves room for a bar and that every
// colour parses.
func VerifyConfig(c *Config) error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.BorderOffset < 0 || c.BorderSize < 0 || c.BarPadding < 0 {
		return fmt.Errorf("border_offset, border_size and bar_padding must not be negative")
	}
	inset := 2 * (c.BorderOffset + c.BorderSize + c.BarPadding)
	if inset >= c.Width || inset >= c.Height {
		return fmt.Errorf("insets of %d leave no room for a bar in %dx%d", inset, c.Width, c.Height)
	}
	if c.CornerRadius < 0 {
		return fmt.Errorf("corner_radius must not be negative, got %v", c.CornerRadius)
	}
	if c.Maximum == 0 {
		return errors.New("max must be positive")
	}
	if _, err := canvas.ParseOrientation(c.Orientation); err != nil {
		return err
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if c.Shm.ProbeLimit < 0 {
		return fmt.Errorf("shm.probe_limit must not be negative, got %d", c.Shm.ProbeLimit)
	}
	return nil
}

// Dimensions returns the bar geometry.
func (c *Config) Dimensions() (canvas.Dimensions, error) {
	o, err := canvas.ParseOrientation(c.Orientation)
	if err != nil {
		return canvas.Dimensions{}, err
	}
	return canvas.Dimensions{
		Width:        c.Width,
		Height:       c.Height,
		BorderOffset: c.BorderOffset,
		BorderSize:   c.BorderSize,
		BarPadding:   c.BarPadding,
		Orientation:  o,
	}, nil
}

// Colors parses the configured colours.
func (c *Config) Colors() (color.Colors, error) {
	var (
		colors color.Colors
		err    error
	)
	if colors.Background, err = color.ParseHex(c.BackgroundColor); err != nil {
		return color.Colors{}, fmt.Errorf("background_color: %w", err)
	}
	if colors.Border, err = color.ParseHex(c.BorderColor); err != nil {
		return color.Colors{}, fmt.Errorf("border_color: %w", err)
	}
	if colors.Value, err = color.ParseHex(c.BarColor); err != nil {
		return color.Colors{}, fmt.Errorf("bar_color: %w", err)
	}
	return colors, nil
}

// Options returns the canvas options implied by the config.
func (c *Config) Options() []canvas.Option {
	return []canvas.Option{
		canvas.WithRadius(c.CornerRadius),
		canvas.WithShmDir(c.Shm.Dir),
		canvas.WithNamePrefix(c.Shm.Prefix),
		canvas.WithProbeLimit(c.Shm.ProbeLimit),
	}
}
