package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/planar/advanced"
	"github.com/osuushi/planar/dbg"
	"github.com/pkg/errors"
)

// Config holds the settings that can come from a TOML file. Flags override
// the file, and the file overrides the defaults.
type Config struct {
	// Epsilon is the comparison tolerance for every geometric predicate.
	Epsilon float64 `toml:"epsilon"`
	// Color enables ANSI colours in command output.
	Color bool `toml:"color"`
	// Scale and Padding control the draw command, in pixels per unit and
	// pixels.
	Scale   float64 `toml:"scale"`
	Padding float64 `toml:"padding"`
}

func DefaultConfig() Config {
	return Config{
		Epsilon: advanced.Epsilon,
		Color:   true,
		Scale:   dbg.DefaultScale,
		Padding: dbg.DefaultPadding,
	}
}

// LoadConfig decodes the file at path over the defaults. Keys the file does
// not mention keep their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "problem reading configuration file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Wrapf(advanced.ErrInvalidArgument, "unknown configuration key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Tolerance validates the configured epsilon.
func (c Config) Tolerance() (advanced.Tolerance, error) {
	tol, err := advanced.NewTolerance(c.Epsilon)
	return tol, errors.Wrap(err, "epsilon")
}
