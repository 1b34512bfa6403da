package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/particle-field/parameter"
)

// Config holds host settings
type Config struct {
	FrameInterval time.Duration
	Seed          int64 // 0 = time based
	Background    colorful.Color
	Opacity       float64
	ColorMode     string
	LogFile       string
}

const (
	defaultConfigPath = "~/.config/particle-field/config.toml"
	defaultLogFile    = "~/.local/state/particle-field/debug.log"
	defaultColorMode  = "auto"
)

// Default returns the built-in host settings
func Default() Config {
	return Config{
		FrameInterval: parameter.FrameInterval,
		Background:    colorful.MustParseHex(parameter.BackgroundColor),
		Opacity:       parameter.LayerOpacity,
		ColorMode:     defaultColorMode,
		LogFile:       mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FrameInterval string   `toml:"frame_interval"`
		Seed          int64    `toml:"seed"`
		Background    string   `toml:"background"`
		Opacity       *float64 `toml:"opacity"`
		ColorMode     string   `toml:"color_mode"`
		LogFile       string   `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if s := strings.TrimSpace(raw.FrameInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse frame_interval: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("frame_interval must be positive, got %s", d)
		}
		cfg.FrameInterval = d
	}

	cfg.Seed = raw.Seed

	if s := strings.TrimSpace(raw.Background); s != "" {
		bg, err := colorful.Hex(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse background: %w", err)
		}
		cfg.Background = bg
	}

	if raw.Opacity != nil {
		if *raw.Opacity < 0 || *raw.Opacity > 1 {
			return Config{}, fmt.Errorf("opacity must be within [0, 1], got %g", *raw.Opacity)
		}
		cfg.Opacity = *raw.Opacity
	}

	if s := strings.TrimSpace(raw.ColorMode); s != "" {
		cfg.ColorMode = s
	}

	if s := strings.TrimSpace(raw.LogFile); s != "" {
		cfg.LogFile = mustExpand(s)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
