// Package config loads the pad's TOML settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Title       string
	Width       float32
	Height      float32
	Selector    string
	StrokeColor string
	StrokeWidth float32
	Background  string
}

const (
	appDir   = "graffitipad"
	fileName = "config.toml"
)

func Default() Config {
	return Config{
		Title:       "Graffiti Pad",
		Width:       800,
		Height:      600,
		Selector:    "#pad",
		StrokeColor: "",
		StrokeWidth: 1,
		Background:  "white",
	}
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), appDir, fileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No config at %s, using defaults", path)
			return Default(), nil
		}
		return Default(), fmt.Errorf("couldn't read config file %s: %w", path, err)
	}
	if conf.StrokeWidth <= 0 {
		conf.StrokeWidth = 1
	}
	return conf, nil
}

// Write stores conf at path, creating the directory if needed.
func Write(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("couldn't create config directory: %w", err)
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("couldn't encode config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("couldn't write config file: %w", err)
	}
	return nil
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	log.Printf("Couldn't resolve $%s falling back to '%s'", xdg, fallback)
	return fallback
}
