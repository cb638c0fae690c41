package motion

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// TriggerConfig tunes when the visibility trigger considers an element
// visible.
type TriggerConfig struct {
	// Threshold is the visible fraction of the element's area required.
	Threshold float64 `yaml:"threshold"`
	// BottomMargin shrinks the viewport from its bottom edge, in pixels.
	BottomMargin float64 `yaml:"bottomMargin"`
}

// Config holds the default timings used when an animation call leaves a
// duration unset. Durations in YAML use Go syntax ("1500ms", "1.2s").
type Config struct {
	ScoreDuration        time.Duration `yaml:"scoreDuration"`
	ProgressDuration     time.Duration `yaml:"progressDuration"`
	FadeInDuration       time.Duration `yaml:"fadeInDuration"`
	StaggerDelay         time.Duration `yaml:"staggerDelay"`
	RescanDebounce       time.Duration `yaml:"rescanDebounce"`
	RespectReducedMotion bool          `yaml:"respectReducedMotion"`
	// FrameRate is the refresh rate for loops this package creates itself.
	FrameRate int           `yaml:"frameRate"`
	Trigger   TriggerConfig `yaml:"trigger"`
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		ScoreDuration:        1500 * time.Millisecond,
		ProgressDuration:     1200 * time.Millisecond,
		FadeInDuration:       600 * time.Millisecond,
		StaggerDelay:         100 * time.Millisecond,
		RescanDebounce:       100 * time.Millisecond,
		RespectReducedMotion: true,
		FrameRate:            60,
		Trigger: TriggerConfig{
			Threshold:    0.1,
			BottomMargin: 50,
		},
	}
}

// FrameInterval returns the frame spacing for FrameRate.
func (c Config) FrameInterval() time.Duration {
	return tickDuration(c.FrameRate)
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"scoreDuration", c.ScoreDuration},
		{"progressDuration", c.ProgressDuration},
		{"fadeInDuration", c.FadeInDuration},
		{"staggerDelay", c.StaggerDelay},
		{"rescanDebounce", c.RescanDebounce},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%s must not be negative, got %v", d.name, d.d)
		}
	}
	if c.Trigger.Threshold < 0 || c.Trigger.Threshold > 1 {
		return fmt.Errorf("trigger.threshold must be in [0, 1], got %v", c.Trigger.Threshold)
	}
	if c.FrameRate < 0 {
		return fmt.Errorf("frameRate must not be negative, got %d", c.FrameRate)
	}
	return nil
}
