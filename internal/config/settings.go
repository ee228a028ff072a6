package config

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLibraryDir    = "library_directory"
	KeyPlayerBinary  = "player_binary"
	KeyPlayerArgs    = "player_args"
	KeyAutoAdvance   = "auto_advance"
	KeyConfirmDelete = "confirm_delete"
	KeyHistoryPath   = "history_path"
)

// Default values
const (
	DefaultPlayerBinary  = "mpv"
	DefaultPlayerArgs    = "--hwdec=auto --profile=gpu-hq --force-window=yes"
	DefaultAutoAdvance   = true
	DefaultConfirmDelete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLibraryDirectory returns the configured series directory
func (s *Settings) GetLibraryDirectory() string {
	dir := s.app.Preferences().String(KeyLibraryDir)
	if dir == "" {
		defaultDir, err := defaultLibraryDir()
		if err != nil {
			defaultDir = "/tmp/videos"
		}
		s.SetLibraryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLibraryDirectory sets the series directory
func (s *Settings) SetLibraryDirectory(dir string) {
	s.app.Preferences().SetString(KeyLibraryDir, dir)
}

// GetPlayerBinary returns the configured media player binary
func (s *Settings) GetPlayerBinary() string {
	binary := s.app.Preferences().String(KeyPlayerBinary)
	if binary == "" {
		s.SetPlayerBinary(DefaultPlayerBinary)
		return DefaultPlayerBinary
	}
	return binary
}

// SetPlayerBinary sets the media player binary
func (s *Settings) SetPlayerBinary(binary string) {
	if binary == "" {
		binary = DefaultPlayerBinary
	}
	s.app.Preferences().SetString(KeyPlayerBinary, binary)
}

// GetPlayerArgs returns the extra player arguments, split on whitespace
func (s *Settings) GetPlayerArgs() []string {
	args := s.app.Preferences().StringWithFallback(KeyPlayerArgs, DefaultPlayerArgs)
	return strings.Fields(args)
}

// GetPlayerArgsString returns the raw player arguments string for editing
func (s *Settings) GetPlayerArgsString() string {
	return s.app.Preferences().StringWithFallback(KeyPlayerArgs, DefaultPlayerArgs)
}

// SetPlayerArgs sets the extra player arguments
func (s *Settings) SetPlayerArgs(args string) {
	s.app.Preferences().SetString(KeyPlayerArgs, args)
}

// GetAutoAdvance returns whether to offer the next episode when playback ends
func (s *Settings) GetAutoAdvance() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoAdvance, DefaultAutoAdvance)
}

// SetAutoAdvance sets the auto-advance behavior
func (s *Settings) SetAutoAdvance(autoAdvance bool) {
	s.app.Preferences().SetBool(KeyAutoAdvance, autoAdvance)
}

// GetConfirmDelete returns whether deletions require confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets the delete confirmation behavior
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetHistoryPath returns the watch history database path
func (s *Settings) GetHistoryPath() string {
	path := s.app.Preferences().String(KeyHistoryPath)
	if path == "" {
		defaultPath, err := defaultHistoryPath()
		if err != nil {
			defaultPath = "/tmp/epwatch-history.db"
		}
		s.SetHistoryPath(defaultPath)
		return defaultPath
	}
	return path
}

// SetHistoryPath sets the watch history database path
func (s *Settings) SetHistoryPath(path string) {
	s.app.Preferences().SetString(KeyHistoryPath, path)
}

// ProgressPath returns the marker file location inside the library directory,
// alongside the episode files it tracks
func (s *Settings) ProgressPath() string {
	return filepath.Join(s.GetLibraryDirectory(), ".progress")
}

// defaultLibraryDir returns the standard Videos directory for the user
func defaultLibraryDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Videos"), nil
}

// defaultHistoryPath returns the history database location under the user
// config directory
func defaultHistoryPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "epwatch", "history.db"), nil
}
