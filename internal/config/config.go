// Package config reads the INI configuration of the geoquery tool.
//
// A configuration file looks like this; every value is optional:
//
//	[Tolerance]
//	Relative = 1e-10
//	MaxIterations = 128
//
//	[Output]
//	Precision = 6
//
//	[Log]
//	Level = info
package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap/zapcore"
	"gopkg.in/gcfg.v1"

	"honnef.co/go/geom"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Tolerance struct {
		// Relative is the relative epsilon of degeneracy tests.
		Relative float64
		// MaxIterations bounds iterative solvers.
		MaxIterations int
	}
	Output struct {
		// Precision is the number of significant digits of reported
		// numbers. 0 reports them exactly.
		Precision int
	}
	Log struct {
		Level string
	}
}

// Default returns the configuration used for values a file doesn't set.
func Default() Config {
	var c Config
	tol := geom.DefaultTolerance[float64]()
	c.Tolerance.Relative = tol.Relative
	c.Tolerance.MaxIterations = tol.MaxIterations
	c.Log.Level = "info"
	return c
}

// Read parses the file at path on top of the defaults and validates the
// result.
func Read(path string) (Config, error) {
	c := Default()
	if err := gcfg.ReadFileInto(&c, path); err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse is like Read, but parses the configuration from a string.
func Parse(s string) (Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(&c, s); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if r := c.Tolerance.Relative; r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: Tolerance.Relative must be finite and non-negative, but is %g", ErrInvalid, r)
	}
	if c.Tolerance.MaxIterations <= 0 {
		return fmt.Errorf("%w: Tolerance.MaxIterations must be positive, but is %d", ErrInvalid, c.Tolerance.MaxIterations)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("%w: Output.Precision must not be negative, but is %d", ErrInvalid, c.Output.Precision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// QueryTolerance returns the tolerance passed to queries.
func (c Config) QueryTolerance() geom.Tolerance[float64] {
	return geom.Tolerance[float64]{
		Relative:      c.Tolerance.Relative,
		MaxIterations: c.Tolerance.MaxIterations,
	}
}

// Level returns the configured log level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: Log.Level: %s", ErrInvalid, err)
	}
	return lvl, nil
}
