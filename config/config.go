// Package config loads the settings of the gridpath command from a .env
// file, GRIDPATH_* environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/search"
)

// Environment keys.
const (
	EnvWidth     = "GRIDPATH_WIDTH"
	EnvHeight    = "GRIDPATH_HEIGHT"
	EnvSeed      = "GRIDPATH_SEED"
	EnvAlgorithm = "GRIDPATH_ALGORITHM"
	EnvMaze      = "GRIDPATH_MAZE"
	EnvDensity   = "GRIDPATH_DENSITY"
	EnvWorkers   = "GRIDPATH_WORKERS"
	EnvLogLevel  = "GRIDPATH_LOG_LEVEL"
	EnvConfig    = "GRIDPATH_CONFIG" // path of an optional YAML overlay
)

// Maze kinds understood by the command.
const (
	MazeNone     = "none"
	MazeRandom   = "random"  // wall pass
	MazeWeights  = "weights" // weight pass
	MazeDivision = "division"
	MazeDFS      = "dfs"
)

// Sentinel errors.
var (
	ErrBadValue = errors.New("config: malformed value")
	ErrInvalid  = errors.New("config: invalid setting")
)

// Config holds the command's settings.
type Config struct {
	Width     int     `yaml:"width"`     // Board columns
	Height    int     `yaml:"height"`    // Board rows
	Seed      int64   `yaml:"seed"`      // Generator seed; 0 selects the default seed
	Algorithm string  `yaml:"algorithm"` // "DS", "BF" or a full name
	Maze      string  `yaml:"maze"`      // One of the Maze* kinds
	Density   float64 `yaml:"density"`   // Decoration probability for passes
	Workers   int     `yaml:"workers"`   // Goroutines for decoration passes
	LogLevel  string  `yaml:"log_level"` // zap level name
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Width:     41,
		Height:    21,
		Seed:      1,
		Algorithm: search.DijkstrasSearch.Code(),
		Maze:      MazeDivision,
		Density:   0.2,
		Workers:   1,
		LogLevel:  "info",
	}
}

// Load reads the given .env files (".env" when none are given; missing
// files are skipped), then GRIDPATH_* variables over Default, then the YAML
// file named by GRIDPATH_CONFIG if set. The result is validated.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("Load: dotenv: %w", err)
	}

	cfg := Default()
	var err error
	if cfg.Width, err = intEnv(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intEnv(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	seed, err := intEnv(EnvSeed, int(cfg.Seed))
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.Workers, err = intEnv(EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Density, err = floatEnv(EnvDensity, cfg.Density); err != nil {
		return Config{}, err
	}
	cfg.Algorithm = getEnvWithDefault(EnvAlgorithm, cfg.Algorithm)
	cfg.Maze = strings.ToLower(getEnvWithDefault(EnvMaze, cfg.Maze))
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)

	if path, ok := os.LookupEnv(EnvConfig); ok && path != "" {
		if err = cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// overlayFile decodes a YAML document onto cfg; absent keys keep their value.
func (c *Config) overlayFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Load: %s: %w", path, err)
	}
	defer f.Close()

	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err = d.Decode(c); err != nil {
		return fmt.Errorf("Load: %s: %v: %w", path, err, ErrBadValue)
	}
	return nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width*c.Height < 2 {
		return fmt.Errorf("Validate: board %dx%d needs two cells: %w", c.Width, c.Height, ErrInvalid)
	}
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalid)
	}
	switch c.Maze {
	case MazeNone, MazeRandom, MazeWeights, MazeDivision, MazeDFS:
	default:
		return fmt.Errorf("Validate: maze %q: %w", c.Maze, ErrInvalid)
	}
	if !(c.Density >= 0 && c.Density <= 1) {
		return fmt.Errorf("Validate: density %v: %w", c.Density, ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("Validate: workers %d: %w", c.Workers, ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("Validate: log level %q: %w", c.LogLevel, ErrInvalid)
	}
	return nil
}

// getEnvWithDefault returns the variable's value or def when unset.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("Load: %s=%q: %w", key, v, ErrBadValue)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("Load: %s=%q: %w", key, v, ErrBadValue)
	}
	return f, nil
}
