package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 800 {
		t.Errorf("screen = %dx%d, want 800x800", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60", cfg.Screen.TargetFPS)
	}
	if cfg.Neuron.Radius != 4 {
		t.Errorf("radius = %g, want 4", cfg.Neuron.Radius)
	}
	if cfg.Population.Max != 500 {
		t.Errorf("population.max = %d, want 500", cfg.Population.Max)
	}
	if cfg.Population.AdmitIntervalMS != 125 {
		t.Errorf("admit_interval_ms = %g, want 125", cfg.Population.AdmitIntervalMS)
	}
	if cfg.Attraction.Threshold != 100 || cfg.Attraction.Force != 0.05 {
		t.Errorf("attraction = %+v, want threshold 100 force 0.05", cfg.Attraction)
	}
	if cfg.Variant != VariantA || !cfg.Input.EnableDrag {
		t.Errorf("variant = %q drag = %v, want a with drag", cfg.Variant, cfg.Input.EnableDrag)
	}
	if cfg.Derived.MinDistance != 80 {
		t.Errorf("derived min distance = %g, want 80 (20 radii)", cfg.Derived.MinDistance)
	}
	if cfg.Derived.MinSpacing != 8 {
		t.Errorf("derived min spacing = %g, want 8", cfg.Derived.MinSpacing)
	}
	magenta := color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	if cfg.Colors.Activated.ToRGBA() != magenta {
		t.Errorf("activated color = %v, want magenta", cfg.Colors.Activated)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
population:
  max: 1000
colors:
  connection: "#80808040"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Population.Max != 1000 {
		t.Errorf("population.max = %d, want 1000", cfg.Population.Max)
	}
	// Untouched keys keep their defaults
	if cfg.Population.AdmitIntervalMS != 125 {
		t.Errorf("admit_interval_ms = %g, want default 125", cfg.Population.AdmitIntervalMS)
	}
	want := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x40}
	if cfg.Colors.Connection.ToRGBA() != want {
		t.Errorf("connection color = %v, want %v", cfg.Colors.Connection.ToRGBA(), want)
	}
	if cfg.Colors.Background.ToRGBA() != (color.RGBA{A: 0xff}) {
		t.Errorf("background color = %v, want opaque black", cfg.Colors.Background.ToRGBA())
	}
}

func TestVariantPresets(t *testing.T) {
	tests := []struct {
		variant     string
		wantDrag    bool
		wantMinDist float64
	}{
		{VariantA, true, 80},
		{VariantB, false, 0},
		{"B", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			cfg := Default()
			if err := cfg.SetVariant(tt.variant); err != nil {
				t.Fatalf("SetVariant(%q): %v", tt.variant, err)
			}
			if cfg.Input.EnableDrag != tt.wantDrag {
				t.Errorf("enable_drag = %v, want %v", cfg.Input.EnableDrag, tt.wantDrag)
			}
			if cfg.Derived.MinDistance != tt.wantMinDist {
				t.Errorf("min distance = %g, want %g", cfg.Derived.MinDistance, tt.wantMinDist)
			}
		})
	}
}

func TestVariantBThenA(t *testing.T) {
	cfg := Default()
	if err := cfg.SetVariant(VariantB); err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetVariant(VariantA); err != nil {
		t.Fatal(err)
	}
	if cfg.Derived.MinDistance != 80 {
		t.Errorf("min distance after b->a = %g, want 80", cfg.Derived.MinDistance)
	}
}

func TestCustomVariantKeepsFields(t *testing.T) {
	path := writeConfig(t, `
variant: custom
input:
  enable_drag: false
attraction:
  min_distance_radii: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.EnableDrag {
		t.Error("custom variant should keep enable_drag=false")
	}
	if cfg.Derived.MinDistance != 20 {
		t.Errorf("min distance = %g, want 20", cfg.Derived.MinDistance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown variant", "variant: c\n", "unknown variant"},
		{"zero radius", "neuron:\n  radius: 0\n", "neuron.radius"},
		{"empty population", "population:\n  max: 0\n", "population.max"},
		{"zero threshold", "attraction:\n  threshold: 0\n", "attraction.threshold"},
		{"bad color", "colors:\n  activated: magenta\n", "parsing color"},
		{"negative force", "attraction:\n  force: -0.05\n", "attraction.force"},
		{"empty gate", "attraction:\n  threshold: 80\n", "must exceed the dead zone"},
		{"dead zone past threshold", "variant: custom\nattraction:\n  threshold: 40\n  min_distance_radii: 15\n", "must exceed the dead zone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadAcceptsZeroForceAndNoDeadZone(t *testing.T) {
	cfg, err := Load(writeConfig(t, "variant: b\nattraction:\n  threshold: 1\n  force: 0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.MinDistance != 0 || cfg.Attraction.Threshold != 1 {
		t.Errorf("min distance %g threshold %g, want 0 and 1", cfg.Derived.MinDistance, cfg.Attraction.Threshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Population.Max = 321
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"#ff00ff"`) && !strings.Contains(string(data), "'#ff00ff'") {
		t.Errorf("written config should contain hex colors, got:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.Population.Max != 321 {
		t.Errorf("population.max = %d, want 321", loaded.Population.Max)
	}
	if loaded.Colors != cfg.Colors {
		t.Errorf("colors = %+v, want %+v", loaded.Colors, cfg.Colors)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#00ffff", Color{R: 0, G: 0xff, B: 0xff, A: 0xff}, false},
		{"ffffff", Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#01020304", Color{R: 1, G: 2, B: 3, A: 4}, false},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
