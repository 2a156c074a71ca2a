// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config reads and writes the TOML settings of a pxl paint program.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/palette"
)

// FileName is the name of the settings file inside Dir.
const FileName = "config.toml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Canvas holds the initial surface settings.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Config is the complete settings file.
type Config struct {
	Canvas      Canvas    `toml:"canvas"`
	HistorySize int       `toml:"history_size"`
	ZoomLevels  []float64 `toml:"zoom_levels"`
	Palette     []string  `toml:"palette"`
	Language    string    `toml:"language"`
	LogLevel    string    `toml:"log_level"`
}

// Default returns the built-in settings: a 640x480 white canvas, three
// undo steps, zoom levels 1, 2, 4 and 8, and the default palette.
func Default() Config {
	colors := make([]string, len(palette.Default))
	for i, c := range palette.Default {
		colors[i] = c.Hex()
	}
	return Config{
		Canvas: Canvas{
			Width:      640,
			Height:     480,
			Background: pxl.White.Hex(),
		},
		HistorySize: pxl.DefaultHistorySize,
		ZoomLevels:  []float64{1, 2, 4, 8},
		Palette:     colors,
		Language:    "en",
		LogLevel:    "warn",
	}
}

// Load reads path on top of Default, so keys missing from the file keep
// their default values. Unknown keys are logged and ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(filepath.Clean(path), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		pxl.Logger().Warn("config: unknown key ignored", "file", path, "key", key.String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write stores cfg at path, creating the parent directory if needed.
func Write(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Dir returns the directory the settings file lives in:
// $XDG_CONFIG_HOME/pxl, falling back to ~/.config/pxl.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pxl")
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("%w: history_size %d, need at least 1", ErrInvalid, c.HistorySize)
	}
	for _, z := range c.ZoomLevels {
		if z <= 0 {
			return fmt.Errorf("%w: zoom level %g", ErrInvalid, z)
		}
	}
	if _, err := c.NewPalette(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Tag(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the canvas background.
func (c Config) BackgroundColor() (pxl.RGB, error) {
	bg, err := palette.ParseColor(c.Canvas.Background)
	if err != nil {
		return pxl.RGB{}, fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	return bg, nil
}

// NewPalette builds the configured palette. An empty list gives the
// default palette.
func (c Config) NewPalette() (*palette.Palette, error) {
	if len(c.Palette) == 0 {
		return palette.New(), nil
	}
	p, err := palette.Parse(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return p, nil
}

// Level parses LogLevel. Empty means warn.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return l, nil
}

// Tag parses Language as a BCP 47 tag. Empty means undetermined, which
// selects the English source strings.
func (c Config) Tag() (language.Tag, error) {
	if strings.TrimSpace(c.Language) == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language: %w", ErrInvalid, err)
	}
	return tag, nil
}
