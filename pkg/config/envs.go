// Package config loads generation settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"roomgrid/pkg/game/generator"
)

// Environment variable names
const (
	EnvWidth       = "ROOMGRID_WIDTH"
	EnvHeight      = "ROOMGRID_HEIGHT"
	EnvRooms       = "ROOMGRID_ROOMS"
	EnvDepth       = "ROOMGRID_DEPTH"
	EnvSeed        = "ROOMGRID_SEED"
	EnvMaxAttempts = "ROOMGRID_MAX_ATTEMPTS"
	EnvLocale      = "ROOMGRID_LOCALE"
	EnvLocaleDir   = "ROOMGRID_LOCALE_DIR"
)

// Settings holds the configuration values used by the command line tool
type Settings struct {
	LevelWidth  int    // Level width in cells
	LevelHeight int    // Level height in cells
	Rooms       int    // Rooms per side of the square partition
	Depth       int    // Starting level number
	Seed        int64  // Random seed; 0 means pick one at startup
	MaxAttempts int    // Ceiling for each resampling loop
	Locale      string // Message catalog language
	LocaleDir   string // Directory holding the message catalogs
}

// Defaults returns the settings used when nothing is configured
func Defaults() Settings {
	cfg := generator.DefaultConfig()
	return Settings{
		LevelWidth:  cfg.LevelWidth,
		LevelHeight: cfg.LevelHeight,
		Rooms:       cfg.Rows,
		Depth:       cfg.Depth,
		MaxAttempts: cfg.MaxAttempts,
		Locale:      "en_GB",
		LocaleDir:   "locales",
	}
}

// Load reads settings from the environment after loading the given .env
// files (".env" when none are named). Missing files are not an error;
// missing variables keep their defaults.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	s := Defaults()
	var err error
	if s.LevelWidth, err = getEnvAsInt(EnvWidth, s.LevelWidth); err != nil {
		return Settings{}, err
	}
	if s.LevelHeight, err = getEnvAsInt(EnvHeight, s.LevelHeight); err != nil {
		return Settings{}, err
	}
	if s.Rooms, err = getEnvAsInt(EnvRooms, s.Rooms); err != nil {
		return Settings{}, err
	}
	if s.Depth, err = getEnvAsInt(EnvDepth, s.Depth); err != nil {
		return Settings{}, err
	}
	if s.MaxAttempts, err = getEnvAsInt(EnvMaxAttempts, s.MaxAttempts); err != nil {
		return Settings{}, err
	}
	if s.Seed, err = getEnvAsInt64(EnvSeed, s.Seed); err != nil {
		return Settings{}, err
	}
	s.Locale = getEnvWithDefault(EnvLocale, s.Locale)
	s.LocaleDir = getEnvWithDefault(EnvLocaleDir, s.LocaleDir)
	return s, nil
}

// GeneratorConfig maps the settings onto a generator configuration
func (s Settings) GeneratorConfig() generator.Config {
	return generator.Config{
		LevelWidth:  s.LevelWidth,
		LevelHeight: s.LevelHeight,
		Rows:        s.Rooms,
		Columns:     s.Rooms,
		Depth:       s.Depth,
		MaxAttempts: s.MaxAttempts,
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or the default when unset
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsInt64 retrieves an environment variable as a 64-bit integer, or the default when unset
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
