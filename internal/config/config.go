package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goflex/internal/nscp"
	"github.com/alexiusacademia/goflex/internal/section"
	"gopkg.in/yaml.v3"
)

// Moduli in the configuration are entered in kN/mm² and scaled to N/mm².
const ModulusScale = 1000.0

const (
	DefaultSpan         = 500.0
	DefaultTopThickness = 4.0
	DefaultTopModulus   = 10.0
	DefaultPlanWidth    = 20.0
	DefaultBraceCount   = 2
	DefaultBottomHeight = 5.0
	DefaultMiddleHeight = 5.0
	DefaultTopHeight    = 7.0
	DefaultTopShape     = "triangle"
	DefaultBraceModulus = 12.0
	DefaultMoment       = 12.0 // N·m
	DefaultRotLimit     = 2.0  // degrees

	// MaxTilt keeps a tilted brace away from the span direction
	MaxTilt = 89.9
)

// Config is the caller-supplied description of a slice
type Config struct {
	Name         string         `yaml:"name,omitempty" json:"name,omitempty"`
	Span         float64        `yaml:"span" json:"span"`                   // mm
	TopThickness float64        `yaml:"top_thickness" json:"top_thickness"` // mm
	TopModulus   float64        `yaml:"top_modulus" json:"top_modulus"`     // kN/mm²
	Braces       []BraceConfig  `yaml:"braces" json:"braces"`
	Rotation     RotationConfig `yaml:"rotation" json:"rotation"`
}

// BraceConfig describes one brace, or Count identical braces.
//
// The breadth is given either directly (Breadth) or derived from PlanWidth
// and one of Angle (inclination from the span) or Tilt (from the perpendicular).
type BraceConfig struct {
	Count     int           `yaml:"count,omitempty" json:"count,omitempty"`
	Breadth   float64       `yaml:"breadth,omitempty" json:"breadth,omitempty"`       // mm
	PlanWidth float64       `yaml:"plan_width,omitempty" json:"plan_width,omitempty"` // mm
	Angle     *float64      `yaml:"angle,omitempty" json:"angle,omitempty"`           // degrees
	Tilt      *float64      `yaml:"tilt,omitempty" json:"tilt,omitempty"`             // degrees
	Bottom    SegmentConfig `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Middle    SegmentConfig `yaml:"middle,omitempty" json:"middle,omitempty"`
	Top       SegmentConfig `yaml:"top,omitempty" json:"top,omitempty"`
}

// SegmentConfig describes one brace layer. Material, when set, is an NSCP
// material name (see nscp.MaterialModulus) and replaces Modulus.
type SegmentConfig struct {
	Shape    string  `yaml:"shape,omitempty" json:"shape,omitempty"`
	Height   float64 `yaml:"height,omitempty" json:"height,omitempty"`     // mm
	Modulus  float64 `yaml:"modulus,omitempty" json:"modulus,omitempty"`   // kN/mm²
	Material string  `yaml:"material,omitempty" json:"material,omitempty"` // e.g. "concrete:28"
}

// RotationConfig holds the serviceability rotation check inputs
type RotationConfig struct {
	Moment float64 `yaml:"moment" json:"moment"` // N·m
	Limit  float64 `yaml:"limit" json:"limit"`   // degrees, 0 = no limit
}

// DefaultConfig returns the reference slice: a 500 mm span with a 4 mm top
// and two perpendicular 20 mm braces.
func DefaultConfig() *Config {
	tilt := 0.0
	return &Config{
		Span:         DefaultSpan,
		TopThickness: DefaultTopThickness,
		TopModulus:   DefaultTopModulus,
		Braces: []BraceConfig{
			{
				Count:     DefaultBraceCount,
				PlanWidth: DefaultPlanWidth,
				Tilt:      &tilt,
				Bottom:    SegmentConfig{Shape: "rectangle", Height: DefaultBottomHeight, Modulus: DefaultBraceModulus},
				Middle:    SegmentConfig{Shape: "rectangle", Height: DefaultMiddleHeight, Modulus: DefaultBraceModulus},
				Top:       SegmentConfig{Shape: DefaultTopShape, Height: DefaultTopHeight, Modulus: DefaultBraceModulus},
			},
		},
		Rotation: RotationConfig{
			Moment: DefaultMoment,
			Limit:  DefaultRotLimit,
		},
	}
}

// Load reads a YAML or JSON configuration, starting from DefaultConfig.
// Braces given in the file replace the default braces entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	defaults := cfg.Braces
	cfg.Braces = nil

	if isJSON(path) {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Braces == nil {
		cfg.Braces = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, or JSON when path ends in .json
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Validate checks the structure of the configuration. Numeric ranges are
// left to the section engine.
func (c *Config) Validate() error {
	var errs []error
	for i, b := range c.Braces {
		if err := b.validate(); err != nil {
			errs = append(errs, fmt.Errorf("brace %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (b BraceConfig) validate() error {
	if b.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", b.Count)
	}
	if b.Breadth != 0 && (b.Angle != nil || b.Tilt != nil || b.PlanWidth != 0) {
		return errors.New("breadth excludes plan_width, angle and tilt")
	}
	if b.Angle != nil && b.Tilt != nil {
		return errors.New("angle and tilt are mutually exclusive")
	}
	for _, seg := range []struct {
		label string
		SegmentConfig
	}{{"bottom", b.Bottom}, {"middle", b.Middle}, {"top", b.Top}} {
		if seg.Material != "" && seg.Modulus != 0 {
			return fmt.Errorf("%s: material and modulus are mutually exclusive", seg.label)
		}
	}
	return nil
}

// BraceCount returns the total number of braces after replication
func (c *Config) BraceCount() int {
	var n int
	for _, b := range c.Braces {
		n += b.count()
	}
	return n
}

func (b BraceConfig) count() int {
	return max(b.Count, 1)
}

// Slice builds the section engine input
func (c *Config) Slice() (section.Slice, error) {
	if err := c.Validate(); err != nil {
		return section.Slice{}, err
	}

	s := section.Slice{
		Span:         c.Span,
		TopThickness: c.TopThickness,
		TopModulus:   c.TopModulus * ModulusScale,
		Braces:       make([]section.Brace, 0, c.BraceCount()),
	}

	for i, bc := range c.Braces {
		brace, err := bc.Brace()
		if err != nil {
			return section.Slice{}, fmt.Errorf("brace %d: %w", i+1, err)
		}
		for n := 0; n < bc.count(); n++ {
			s.Braces = append(s.Braces, brace)
		}
	}

	return s, nil
}

// Brace converts the description into a section.Brace
func (b BraceConfig) Brace() (section.Brace, error) {
	var brace section.Brace

	switch {
	case b.Breadth != 0:
		brace.Breadth = section.Direct{Breadth: b.Breadth}
	case b.Angle != nil:
		brace.Breadth = section.Derived{PlanWidth: b.PlanWidth, AngleDeg: *b.Angle}
	default:
		var tilt float64
		if b.Tilt != nil {
			tilt = *b.Tilt
		}
		brace.Breadth = section.Derived{PlanWidth: b.PlanWidth, AngleDeg: 90 - math.Min(math.Max(tilt, 0), MaxTilt)}
	}

	var err error
	if brace.Bottom, err = b.Bottom.segment(); err != nil {
		return brace, fmt.Errorf("bottom: %w", err)
	}
	if brace.Middle, err = b.Middle.segment(); err != nil {
		return brace, fmt.Errorf("middle: %w", err)
	}
	if brace.Top, err = b.Top.segment(); err != nil {
		return brace, fmt.Errorf("top: %w", err)
	}
	return brace, nil
}

func (s SegmentConfig) segment() (section.Segment, error) {
	shape := section.ShapeNone
	if s.Shape != "" {
		var err error
		if shape, err = section.ParseShape(s.Shape); err != nil {
			return section.Segment{}, err
		}
	}

	modulus := s.Modulus * ModulusScale
	if s.Material != "" {
		var err error
		if modulus, err = nscp.MaterialModulus(s.Material); err != nil {
			return section.Segment{}, err
		}
	}

	return section.Segment{Shape: shape, Height: s.Height, Modulus: modulus}, nil
}
