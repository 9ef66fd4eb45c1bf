package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := cfg.LayoutBounds(); got != layout.DefaultBounds() {
		t.Errorf("LayoutBounds() = %v, want %v", got, layout.DefaultBounds())
	}

	a := cfg.Arranger()
	if a.Enabled {
		t.Error("Arranger() must start disabled")
	}
	if a.Interval != time.Second || a.Force != 0.5 || a.Min != 0.05 || a.Max != 0.1 {
		t.Errorf("Arranger() = %+v, want the built-in defaults", a)
	}
	if len(cfg.Palette) != 8 {
		t.Errorf("default palette has %d colors, want 8", len(cfg.Palette))
	}
	if len(cfg.FROptions()) != 2 {
		t.Errorf("FROptions() returned %d options, want 2", len(cfg.FROptions()))
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[bounds]
min = [-2.0, -2.0, 0.0]
max = [2.0, 2.0, 0.0]

[arrange]
force = 0.8
interval = "250ms"

[layout]
iterations = 40

[cache]
namespace = "routing"

[[palette]]
name = "teal"
hex = "#008080"

[[palette]]
name = "navy"
hex = "#000080"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	b := cfg.LayoutBounds()
	if !b.Is2D() || b.Max != (r3.Vec{X: 2, Y: 2}) {
		t.Errorf("LayoutBounds() = %v", b)
	}
	if cfg.Arrange.Force != 0.8 {
		t.Errorf("Arrange.Force = %g, want 0.8", cfg.Arrange.Force)
	}
	if cfg.Arrange.Min != layout.DefaultMin {
		t.Errorf("Arrange.Min = %g, want default %g", cfg.Arrange.Min, layout.DefaultMin)
	}
	if got := cfg.Arranger().Interval; got != 250*time.Millisecond {
		t.Errorf("Arranger().Interval = %v, want 250ms", got)
	}
	if cfg.Layout.Iterations != 40 || cfg.Layout.Radius != 2 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Cache.Namespace != "routing" || cfg.Cache.Redis != "localhost:6379" {
		t.Errorf("Cache = %+v, want namespace over the default redis address", cfg.Cache)
	}
	if len(cfg.Palette) != 2 || cfg.Palette.Name(1) != "navy" {
		t.Errorf("Palette = %v, want the two configured colors", cfg.Palette)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"unknown key", "[layout]\nradiuss = 3.0\n", errors.ErrCodeInvalidConfig},
		{"syntax", "[layout\n", errors.ErrCodeInvalidConfig},
		{"bad duration", "[arrange]\ninterval = \"soon\"\n", errors.ErrCodeInvalidConfig},
		{"force out of range", "[arrange]\nforce = 1.5\n", errors.ErrCodeInvalidConfig},
		{"inverted range", "[arrange]\nmin = 0.3\nmax = 0.1\n", errors.ErrCodeInvalidConfig},
		{"inverted bounds", "[bounds]\nmin = [1.0, 1.0, 1.0]\nmax = [0.0, 0.0, 0.0]\n", errors.ErrCodeInvalidConfig},
		{"bad palette", "[[palette]]\nname = \"x\"\nhex = \"red\"\n", errors.ErrCodeInvalidConfig},
		{"bad cooling", "[layout]\ncooling = 0.0\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() = %v", err)
	}
	if cfg.Layout.Radius != Default().Layout.Radius {
		t.Errorf("LoadDefault() did not return defaults: %+v", cfg)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatal(err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", time.Duration(d))
	}
	b, _ := d.MarshalText()
	if string(b) != "1m30s" {
		t.Errorf("MarshalText() = %q", b)
	}
}
