// Package config loads stitcher settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"img-stitcher/internal/features"
	"img-stitcher/internal/match"
	"img-stitcher/internal/stitch"

	"gopkg.in/yaml.v3"
)

// Config is the complete stitcher configuration.
type Config struct {
	Detector DetectorConfig `yaml:"detector"`
	Matcher  MatcherConfig  `yaml:"matcher"`
	Stitch   StitchConfig   `yaml:"stitch"`
}

// DetectorConfig contains corner detection settings
type DetectorConfig struct {
	Threshold int `yaml:"threshold"`  // intensity difference a ring sample must exceed
	NMSRadius int `yaml:"nms_radius"` // suppression window radius
	MaxPoints int `yaml:"max_points"` // per-strip cap, 0 = unlimited
}

// MatcherConfig contains descriptor matching settings
type MatcherConfig struct {
	Similarity int `yaml:"similarity"` // a match must score strictly above this
}

// StitchConfig contains compositing settings. Band, Span, Local and
// Consensus default per axis when left unset.
type StitchConfig struct {
	Axis      features.Direction `yaml:"axis"`
	Band      int                `yaml:"band,omitempty"`
	Span      int                `yaml:"span,omitempty"`
	Local     *bool              `yaml:"local,omitempty"`
	Consensus *bool              `yaml:"consensus,omitempty"`
	Workers   int                `yaml:"workers"`
	OpenCV    bool               `yaml:"opencv"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Detector: DetectorConfig{
			Threshold: features.DefaultThreshold,
			NMSRadius: features.DefaultRadius,
		},
		Matcher: MatcherConfig{
			Similarity: match.DefaultSimilarity,
		},
		Stitch: StitchConfig{
			Axis: features.Horizontal,
		},
	}
}

// Load reads a YAML file over Default. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Detector.Threshold < 0 || c.Detector.Threshold > 255 {
		errs = append(errs, fmt.Errorf("detector.threshold %d outside [0, 255]", c.Detector.Threshold))
	}
	if c.Detector.NMSRadius < 0 {
		errs = append(errs, fmt.Errorf("detector.nms_radius %d is negative", c.Detector.NMSRadius))
	}
	if c.Detector.MaxPoints < 0 {
		errs = append(errs, fmt.Errorf("detector.max_points %d is negative", c.Detector.MaxPoints))
	}
	if c.Matcher.Similarity < 0 || c.Matcher.Similarity >= features.DescriptorBits {
		errs = append(errs, fmt.Errorf("matcher.similarity %d outside [0, %d)", c.Matcher.Similarity, features.DescriptorBits))
	}
	if c.Stitch.Band < 0 || c.Stitch.Span < 0 {
		errs = append(errs, fmt.Errorf("stitch.band and stitch.span must not be negative"))
	}
	if c.Stitch.Workers < 0 {
		errs = append(errs, fmt.Errorf("stitch.workers %d is negative", c.Stitch.Workers))
	}
	return errors.Join(errs...)
}

// Options converts the configuration to stitch options.
func (c *Config) Options() stitch.Options {
	o := stitch.DefaultOptions(c.Stitch.Axis)
	o.Threshold = c.Detector.Threshold
	o.Radius = c.Detector.NMSRadius
	o.MaxPoints = c.Detector.MaxPoints
	o.Similarity = c.Matcher.Similarity
	o.Workers = c.Stitch.Workers
	if c.Stitch.Band > 0 {
		o.Band = c.Stitch.Band
	}
	if c.Stitch.Span > 0 {
		o.Span = c.Stitch.Span
	}
	if c.Stitch.Local != nil {
		o.Local = *c.Stitch.Local
	}
	if c.Stitch.Consensus != nil {
		o.Consensus = *c.Stitch.Consensus
	}
	return o
}
