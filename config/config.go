// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Variant names select a preset for the drag and dead-zone options.
const (
	VariantA      = "a"      // drag enabled, minimum connection distance active
	VariantB      = "b"      // click toggle only, no minimum distance
	VariantCustom = "custom" // use input/attraction fields as written
)

// Config holds all animation configuration parameters.
type Config struct {
	Variant    string           `yaml:"variant"`
	Screen     ScreenConfig     `yaml:"screen"`
	Neuron     NeuronConfig     `yaml:"neuron"`
	Colors     ColorsConfig     `yaml:"colors"`
	Population PopulationConfig `yaml:"population"`
	Attraction AttractionConfig `yaml:"attraction"`
	Input      InputConfig      `yaml:"input"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds canvas and frame rate settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// NeuronConfig holds neuron drawing parameters.
type NeuronConfig struct {
	Radius float64 `yaml:"radius"` // Draw radius; also the hit-test and spacing unit
}

// ColorsConfig holds the palette. Values are "#rrggbb" or "#rrggbbaa".
type ColorsConfig struct {
	Background  Color `yaml:"background"`
	Activated   Color `yaml:"activated"`
	Deactivated Color `yaml:"deactivated"`
	Connection  Color `yaml:"connection"`
}

// PopulationConfig holds admission parameters.
type PopulationConfig struct {
	Max                  int     `yaml:"max"`                    // Population cap
	AdmitIntervalMS      float64 `yaml:"admit_interval_ms"`      // Minimum time between admissions
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"` // Resample bound per admission (0 = unbounded)
}

// AttractionConfig holds the pairwise attraction parameters.
type AttractionConfig struct {
	Threshold        float64 `yaml:"threshold"`          // Connection distance threshold
	Force            float64 `yaml:"force"`              // Attraction force factor
	MinDistanceRadii float64 `yaml:"min_distance_radii"` // Dead zone in neuron radii (0 = none)
}

// InputConfig holds pointer handling parameters.
type InputConfig struct {
	EnableDrag bool    `yaml:"enable_drag"`
	ClickSlop  float64 `yaml:"click_slop"` // Max pointer travel between press and release for a click
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow          float64 `yaml:"stats_window"`           // Seconds of frames per stats window
	PerfCollectorWindow  int     `yaml:"perf_collector_window"`  // Frames averaged by the perf collector
	MilestoneHistorySize int     `yaml:"milestone_history_size"` // Windows kept for milestone detection
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Width       float64 // Screen.Width as float64
	Height      float64 // Screen.Height as float64
	MinDistance float64 // Attraction.MinDistanceRadii * Neuron.Radius
	MinSpacing  float64 // Placement separation, 2 * Neuron.Radius
	FrameMS     float64 // Nominal milliseconds per frame
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetVariant switches the preset and recomputes derived values.
func (c *Config) SetVariant(variant string) error {
	c.Variant = variant
	return c.finalize()
}

func (c *Config) finalize() error {
	if err := c.applyVariant(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// applyVariant forces the preset-controlled fields for variants a and b.
func (c *Config) applyVariant() error {
	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	switch c.Variant {
	case VariantA:
		c.Input.EnableDrag = true
		if c.Attraction.MinDistanceRadii <= 0 {
			c.Attraction.MinDistanceRadii = 20
		}
	case VariantB:
		c.Input.EnableDrag = false
		c.Attraction.MinDistanceRadii = 0
	case VariantCustom, "":
		c.Variant = VariantCustom
	default:
		return fmt.Errorf("unknown variant %q (want %q, %q or %q)", c.Variant, VariantA, VariantB, VariantCustom)
	}
	return nil
}

// Validate rejects configurations the animation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Neuron.Radius <= 0 {
		errs = append(errs, fmt.Errorf("neuron.radius must be positive, got %g", c.Neuron.Radius))
	}
	if c.Population.Max < 1 {
		errs = append(errs, fmt.Errorf("population.max must be at least 1, got %d", c.Population.Max))
	}
	if c.Population.AdmitIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("population.admit_interval_ms must not be negative, got %g", c.Population.AdmitIntervalMS))
	}
	if c.Population.MaxPlacementAttempts < 0 {
		errs = append(errs, fmt.Errorf("population.max_placement_attempts must not be negative, got %d", c.Population.MaxPlacementAttempts))
	}
	if c.Attraction.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("attraction.threshold must be positive, got %g", c.Attraction.Threshold))
	}
	if c.Attraction.Force < 0 {
		errs = append(errs, fmt.Errorf("attraction.force must not be negative, got %g", c.Attraction.Force))
	}
	if c.Attraction.MinDistanceRadii < 0 {
		errs = append(errs, fmt.Errorf("attraction.min_distance_radii must not be negative, got %g", c.Attraction.MinDistanceRadii))
	} else if minDist := c.Attraction.MinDistanceRadii * c.Neuron.Radius; c.Attraction.Threshold > 0 && minDist >= c.Attraction.Threshold {
		errs = append(errs, fmt.Errorf("attraction.threshold %g must exceed the dead zone of %g (min_distance_radii * radius), or nothing ever connects",
			c.Attraction.Threshold, minDist))
	}
	if c.Input.ClickSlop < 0 {
		errs = append(errs, fmt.Errorf("input.click_slop must not be negative, got %g", c.Input.ClickSlop))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Width = float64(c.Screen.Width)
	c.Derived.Height = float64(c.Screen.Height)
	c.Derived.MinDistance = c.Attraction.MinDistanceRadii * c.Neuron.Radius
	c.Derived.MinSpacing = 2 * c.Neuron.Radius
	c.Derived.FrameMS = 1000.0 / float64(c.Screen.TargetFPS)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Color is an RGBA color that round-trips through YAML as a hex string.
type Color color.RGBA

// ToRGBA returns the color as a color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// String formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parsing color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
