// Package config loads the preview server configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultPort            = "8080"
	DefaultMaxUploadMB     = 16
	DefaultMaxUploadPixels = 6000 * 6000
)

// Config is the preview server configuration.
type Config struct {
	Port            string     // PORT
	BasePath        string     // TEXCOMP_BASE, base texture file (required)
	LayoutPath      string     // TEXCOMP_LAYOUT, optional TOML layout
	FontDir         string     // TEXCOMP_FONT_DIR, optional directory of TTF/OTF files
	LogLevel        slog.Level // TEXCOMP_LOG_LEVEL
	MaxUploadBytes  int64      // TEXCOMP_MAX_UPLOAD_MB
	MaxUploadPixels int64      // TEXCOMP_MAX_UPLOAD_PIXELS, width×height per uploaded image
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads envFile into the environment, without overriding variables
// that are already set, then builds the configuration. A missing envFile is
// not an error; pass "" to skip it.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Port:       getenv("PORT", DefaultPort),
		BasePath:   os.Getenv("TEXCOMP_BASE"),
		LayoutPath: os.Getenv("TEXCOMP_LAYOUT"),
		FontDir:    os.Getenv("TEXCOMP_FONT_DIR"),
	}
	if cfg.BasePath == "" {
		return Config{}, errors.New("config: TEXCOMP_BASE is required")
	}

	if s := os.Getenv("TEXCOMP_LOG_LEVEL"); s != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s)); err != nil {
			return Config{}, fmt.Errorf("config: TEXCOMP_LOG_LEVEL: %w", err)
		}
	}

	mb := DefaultMaxUploadMB
	if s := os.Getenv("TEXCOMP_MAX_UPLOAD_MB"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: TEXCOMP_MAX_UPLOAD_MB: invalid value %q", s)
		}
		mb = n
	}
	cfg.MaxUploadBytes = int64(mb) << 20

	cfg.MaxUploadPixels = DefaultMaxUploadPixels
	if s := os.Getenv("TEXCOMP_MAX_UPLOAD_PIXELS"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: TEXCOMP_MAX_UPLOAD_PIXELS: invalid value %q", s)
		}
		cfg.MaxUploadPixels = n
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
