package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure for the CLI.
type Config struct {
	Library      string       `toml:"library"`
	ProgressFile string       `toml:"progress_file"`
	HistoryDB    string       `toml:"history_db"`
	Player       PlayerConfig `toml:"player"`
}

// PlayerConfig selects the external media player.
type PlayerConfig struct {
	Binary string   `toml:"binary"`
	Args   []string `toml:"args"`
}

// DefaultConfigPath returns the standard CLI config location.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(configDir, "epwatch", "config.toml"), nil
}

// LoadConfig reads the TOML config from path. A missing file yields the
// zero config so flags and defaults can fill everything in.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyDefaults(cfg), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return applyDefaults(cfg), nil
}

// applyDefaults fills in derivable values left empty in the file.
func applyDefaults(cfg Config) Config {
	if cfg.Library == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Library = filepath.Join(home, "Videos")
		}
	}
	if cfg.ProgressFile == "" && cfg.Library != "" {
		cfg.ProgressFile = filepath.Join(cfg.Library, ".progress")
	}
	if cfg.HistoryDB == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			cfg.HistoryDB = filepath.Join(configDir, "epwatch", "history.db")
		}
	}
	if cfg.Player.Binary == "" {
		cfg.Player.Binary = "mpv"
	}
	if cfg.Player.Args == nil {
		cfg.Player.Args = []string{"--hwdec=auto", "--profile=gpu-hq", "--force-window=yes"}
	}
	return cfg
}
