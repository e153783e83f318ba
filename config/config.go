// Package config resolves citysearch settings from defaults, an optional YAML
// file, a .env file and CITYSEARCH_* environment variables, in that order.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/search"
)

// Environment variable names.
const (
	EnvCoordinates = "CITYSEARCH_COORDINATES"
	EnvAdjacencies = "CITYSEARCH_ADJACENCIES"
	EnvStrategy    = "CITYSEARCH_STRATEGY"
	EnvMaxDepth    = "CITYSEARCH_MAX_DEPTH"
	EnvLogLevel    = "CITYSEARCH_LOG_LEVEL"
	EnvListen      = "CITYSEARCH_LISTEN"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of the binary.
type Config struct {
	Coordinates string `yaml:"coordinates"`
	Adjacencies string `yaml:"adjacencies"`
	Strategy    string `yaml:"strategy"`
	// MaxDepth bounds iterative deepening; -1 means "use the city count".
	MaxDepth int    `yaml:"max_depth"`
	LogLevel string `yaml:"log_level"`
	Listen   string `yaml:"listen"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Coordinates: "coordinates.csv",
		Adjacencies: "Adjacencies.txt",
		Strategy:    "astar",
		MaxDepth:    search.Unbounded,
		LogLevel:    "info",
		Listen:      ":8080",
	}
}

// Load builds a Config. An empty path skips the YAML file; a missing .env is
// ignored. envFiles defaults to ".env".
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			log.Debugf("no env file %s: %v", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return errors.Wrapf(err, "config: decode %s", path)
	}

	return nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		EnvCoordinates: &c.Coordinates,
		EnvAdjacencies: &c.Adjacencies,
		EnvStrategy:    &c.Strategy,
		EnvLogLevel:    &c.LogLevel,
		EnvListen:      &c.Listen,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvMaxDepth); ok && v != "" {
		d, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvMaxDepth, v)
		}
		c.MaxDepth = d
	}

	return nil
}

// Validate checks the strategy, depth bound and log level.
func (c *Config) Validate() error {
	if _, err := citysearch.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrapf(ErrInvalid, "strategy %q", c.Strategy)
	}
	if c.MaxDepth < search.Unbounded {
		return errors.Wrapf(ErrInvalid, "max_depth %d", c.MaxDepth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}

	return nil
}

// DefaultStrategy returns the parsed Strategy; Validate guarantees it parses.
func (c *Config) DefaultStrategy() citysearch.Strategy {
	s, err := citysearch.ParseStrategy(c.Strategy)
	if err != nil {
		return citysearch.AStar
	}

	return s
}

// Level returns the parsed log level, falling back to Info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// DepthBound returns the iterative-deepening bound for a graph with cityCount
// cities: MaxDepth when set, otherwise cityCount.
func (c *Config) DepthBound(cityCount int) int {
	if c.MaxDepth >= 0 {
		return c.MaxDepth
	}

	return cityCount
}
