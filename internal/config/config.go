// Package config loads matchain settings from a TOML file.
//
// Every field has a default (see Default); a file only needs the keys it
// wants to change. Extra chains listed under [[cases]] are appended to the
// reference battery by the battery command.
//
//	log_level          = "debug"
//	oracle_limit       = 10
//	naive_render_limit = 8
//	strategy           = "bottom-up"
//	max_chain          = 128
//
//	[[cases]]
//	name = "textbook"
//	dims = [[10, 20], [20, 30], [30, 40], [40, 30]]
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/matchain/mcm"
)

// ErrInvalid is returned when a decoded value is out of range or unknown.
var ErrInvalid = errors.New("config: invalid value")

// DefaultAddr is the listen address of the HTTP server.
const DefaultAddr = ":8080"

// DefaultMaxChain is the longest chain the HTTP server accepts.
const DefaultMaxChain = 256

// Config is the decoded settings file.
type Config struct {
	LogLevel         string `toml:"log_level"`
	OracleLimit      int    `toml:"oracle_limit"`
	NaiveRenderLimit int    `toml:"naive_render_limit"`
	Strategy         string `toml:"strategy"`
	Symbol           string `toml:"symbol"`
	Marker           string `toml:"marker"`
	Addr             string `toml:"addr"`
	MaxChain         int    `toml:"max_chain"`
	Cases            []Case `toml:"cases"`
}

// Case is one extra chain for the battery.
type Case struct {
	Name     string  `toml:"name"`
	Dims     [][]int `toml:"dims"`
	Negative bool    `toml:"negative"` // expected to fail validation
}

// Pairs converts Dims into {rows, cols} pairs.
func (c Case) Pairs() ([][2]int, error) {
	out := make([][2]int, len(c.Dims))
	for i, d := range c.Dims {
		if len(d) != 2 {
			return nil, fmt.Errorf("config: case %q: dims[%d] has %d values, want 2: %w", c.Name, i, len(d), ErrInvalid)
		}
		out[i] = [2]int{d[0], d[1]}
	}

	return out, nil
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:         "info",
		OracleLimit:      mcm.DefaultOracleLimit,
		NaiveRenderLimit: mcm.DefaultNaiveRenderLimit,
		Strategy:         mcm.TopDown.String(),
		Symbol:           mcm.DefaultSymbol,
		Marker:           mcm.DefaultMarker,
		Addr:             DefaultAddr,
		MaxChain:         DefaultMaxChain,
	}
}

// Load reads and validates the TOML file at path on top of Default.
// An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads TOML from r on top of Default and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q: %w", undecoded[0].String(), ErrInvalid)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.OracleLimit < 0 || c.OracleLimit > mcm.MaxOracleLimit {
		return fmt.Errorf("config: oracle_limit=%d must be in [0, %d]: %w", c.OracleLimit, mcm.MaxOracleLimit, ErrInvalid)
	}
	if c.NaiveRenderLimit < 0 || c.NaiveRenderLimit > mcm.MaxNaiveRenderLimit {
		return fmt.Errorf("config: naive_render_limit=%d must be in [0, %d]: %w", c.NaiveRenderLimit, mcm.MaxNaiveRenderLimit, ErrInvalid)
	}
	if c.MaxChain < 1 {
		return fmt.Errorf("config: max_chain=%d must be >= 1: %w", c.MaxChain, ErrInvalid)
	}
	if _, err := mcm.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: strategy: %w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	for _, cs := range c.Cases {
		if cs.Name == "" {
			return fmt.Errorf("config: case without name: %w", ErrInvalid)
		}
		if _, err := cs.Pairs(); err != nil {
			return err
		}
	}

	return nil
}

// Options maps the config onto solver options. Call Validate first.
func (c Config) Options() mcm.Options {
	strategy, err := mcm.ParseStrategy(c.Strategy)
	if err != nil {
		strategy = mcm.TopDown
	}

	return mcm.Options{
		Strategy:         strategy,
		OracleLimit:      c.OracleLimit,
		NaiveRenderLimit: c.NaiveRenderLimit,
		Notation:         mcm.Notation{Symbol: c.Symbol, Marker: c.Marker},
	}
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
