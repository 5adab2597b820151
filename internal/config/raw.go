package config

import (
	"fmt"
	"strings"
	"time"
)

// RawConfig mirrors the YAML file. Unset keys stay nil so that only what the
// file names overrides the defaults.
type RawConfig struct {
	Transport    *string        `yaml:"transport"`
	Herbstclient *string        `yaml:"herbstclient"`
	Display      *string        `yaml:"display"`
	SplitRatio   *float64       `yaml:"split_ratio"`
	Timeout      *string        `yaml:"timeout"`
	LogLevel     *string        `yaml:"log_level"`
	Attributes   *RawAttributes `yaml:"attributes"`
}

// RawAttributes overrides individual herbstluftwm attribute paths.
type RawAttributes struct {
	ClientCount    *string `yaml:"client_count"`
	ClientIndex    *string `yaml:"client_index"`
	FrameIndex     *string `yaml:"frame_index"`
	FrameGeometry  *string `yaml:"frame_geometry"`
	ClientGeometry *string `yaml:"client_geometry"`
	FrameAlgorithm *string `yaml:"frame_algorithm"`
	WindowID       *string `yaml:"window_id"`
}

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Transport != nil {
		cfg.Transport = strings.ToLower(strings.TrimSpace(*raw.Transport))
	}
	if raw.Herbstclient != nil {
		cfg.Herbstclient = *raw.Herbstclient
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.SplitRatio != nil {
		cfg.SplitRatio = *raw.SplitRatio
	}
	if raw.Timeout != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*raw.Timeout))
		if err != nil {
			return nil, &ValidationError{Path: "timeout", Err: fmt.Errorf("invalid duration %q", *raw.Timeout)}
		}
		cfg.Timeout = d
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}

	if a := raw.Attributes; a != nil {
		set := func(dst *string, v *string) {
			if v != nil && strings.TrimSpace(*v) != "" {
				*dst = strings.TrimSpace(*v)
			}
		}
		set(&cfg.Attributes.ClientCount, a.ClientCount)
		set(&cfg.Attributes.ClientIndex, a.ClientIndex)
		set(&cfg.Attributes.FrameIndex, a.FrameIndex)
		set(&cfg.Attributes.FrameGeometry, a.FrameGeometry)
		set(&cfg.Attributes.ClientGeometry, a.ClientGeometry)
		set(&cfg.Attributes.FrameAlgorithm, a.FrameAlgorithm)
		set(&cfg.Attributes.WindowID, a.WindowID)
	}

	return cfg, nil
}
