// Package config loads babelgraph settings from a TOML file.
//
// Every field has a default, so a config file only needs the keys it
// changes:
//
//	[bounds]
//	min = [-1.0, -1.0, -1.0]
//	max = [1.0, 1.0, 1.0]
//
//	[arrange]
//	force = 0.5
//	min = 0.05
//	max = 0.1
//	interval = "1s"
//
//	[layout]
//	radius = 2.0
//	node_size = 0.05
//	iterations = 100
//	cooling = 0.98
//
//	[cache]
//	ttl = "24h"
//	redis = "localhost:6379"
//
//	[[palette]]
//	name = "teal"
//	hex = "#008080"
//
// A [[palette]] list replaces the default colors as a whole.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/errors"
	"github.com/matzehuels/babelgraph/pkg/layout"
	"github.com/matzehuels/babelgraph/pkg/palette"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.toml"

// Duration is a time.Duration written as a string such as "750ms" or "1s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the complete set of settings.
type Config struct {
	Bounds  Bounds          `toml:"bounds"`
	Arrange Arrange         `toml:"arrange"`
	Layout  Layout          `toml:"layout"`
	Cache   Cache           `toml:"cache"`
	Palette palette.Palette `toml:"palette"`
}

// Bounds is the box random placement and force-directed layout keep
// vertices in.
type Bounds struct {
	Min [3]float64 `toml:"min"`
	Max [3]float64 `toml:"max"`
}

// Arrange holds the parameters of the periodic relaxation step.
type Arrange struct {
	Force    float64  `toml:"force"`
	Min      float64  `toml:"min"`
	Max      float64  `toml:"max"`
	Interval Duration `toml:"interval"`
}

// Layout holds the parameters of the placement algorithms.
type Layout struct {
	Radius     float64 `toml:"radius"`
	NodeSize   float64 `toml:"node_size"`
	Iterations int     `toml:"iterations"`
	Cooling    float64 `toml:"cooling"`
}

// Cache configures where analysis results are cached.
type Cache struct {
	Dir   string   `toml:"dir"`   // empty means the XDG cache directory
	TTL   Duration `toml:"ttl"`   // zero means entries never expire
	Redis string   `toml:"redis"` // address used when redis caching is requested

	// Namespace prefixes report keys in redis so several projects can share
	// one instance. Empty means unscoped keys.
	Namespace string `toml:"namespace"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Bounds: Bounds{
			Min: [3]float64{-1, -1, -1},
			Max: [3]float64{1, 1, 1},
		},
		Arrange: Arrange{
			Force:    layout.DefaultForce,
			Min:      layout.DefaultMin,
			Max:      layout.DefaultMax,
			Interval: Duration(layout.DefaultInterval),
		},
		Layout: Layout{
			Radius:     2,
			NodeSize:   0.05,
			Iterations: layout.DefaultFRIterations,
			Cooling:    layout.DefaultCooling,
		},
		Cache: Cache{
			TTL:   Duration(24 * time.Hour),
			Redis: "localhost:6379",
		},
		Palette: palette.Default(),
	}
}

// Load reads the TOML file at path on top of [Default] and validates the
// result. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath] when it exists and returns
// [Default] otherwise.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the config file location under the user config
// directory, e.g. ~/.config/babelgraph/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "babelgraph", FileName), nil
}

// Validate checks ranges that the algorithms cannot work with.
func (c Config) Validate() error {
	if err := c.LayoutBounds().Validate(); err != nil {
		return err
	}
	switch {
	case c.Arrange.Force <= 0 || c.Arrange.Force > 1:
		return errors.New(errors.ErrCodeInvalidInput, "arrange.force must be in (0, 1], got %g", c.Arrange.Force)
	case c.Arrange.Min < 0 || c.Arrange.Max < c.Arrange.Min:
		return errors.New(errors.ErrCodeInvalidInput, "arrange range [%g, %g] is invalid", c.Arrange.Min, c.Arrange.Max)
	case c.Arrange.Interval <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "arrange.interval must be positive")
	case c.Layout.Radius <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "layout.radius must be positive, got %g", c.Layout.Radius)
	case c.Layout.NodeSize <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "layout.node_size must be positive, got %g", c.Layout.NodeSize)
	case c.Layout.Iterations < 0:
		return errors.New(errors.ErrCodeInvalidInput, "layout.iterations must not be negative")
	case c.Layout.Cooling <= 0 || c.Layout.Cooling > 1:
		return errors.New(errors.ErrCodeInvalidInput, "layout.cooling must be in (0, 1], got %g", c.Layout.Cooling)
	case c.Cache.TTL < 0:
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	return c.Palette.Validate()
}

// LayoutBounds converts the configured box to [layout.Bounds].
func (c Config) LayoutBounds() layout.Bounds {
	return layout.Bounds{
		Min: r3.Vec{X: c.Bounds.Min[0], Y: c.Bounds.Min[1], Z: c.Bounds.Min[2]},
		Max: r3.Vec{X: c.Bounds.Max[0], Y: c.Bounds.Max[1], Z: c.Bounds.Max[2]},
	}
}

// Arranger returns a disabled arranger with the configured parameters.
func (c Config) Arranger() *layout.Arranger {
	a := layout.NewArranger()
	a.Force = c.Arrange.Force
	a.Min = c.Arrange.Min
	a.Max = c.Arrange.Max
	a.Interval = time.Duration(c.Arrange.Interval)
	return a
}

// FROptions returns the force-directed layout options for the configured
// iteration count and cooling factor.
func (c Config) FROptions() []layout.FROption {
	return []layout.FROption{
		layout.WithFRIterations(c.Layout.Iterations),
		layout.WithCooling(c.Layout.Cooling),
	}
}
