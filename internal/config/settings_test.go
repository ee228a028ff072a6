package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLibraryDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetLibraryDirectory()
	if dir == "" {
		t.Error("Library directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/videos"
	settings.SetLibraryDirectory(customDir)

	if got := settings.GetLibraryDirectory(); got != customDir {
		t.Errorf("Expected library directory %s, got %s", customDir, got)
	}
}

func TestPlayerBinary(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetPlayerBinary(); got != DefaultPlayerBinary {
		t.Errorf("Expected default player binary %s, got %s", DefaultPlayerBinary, got)
	}

	// Test setting custom value
	settings.SetPlayerBinary("vlc")
	if got := settings.GetPlayerBinary(); got != "vlc" {
		t.Errorf("Expected player binary vlc, got %s", got)
	}

	// Test empty binary defaults back
	settings.SetPlayerBinary("")
	if got := settings.GetPlayerBinary(); got != DefaultPlayerBinary {
		t.Errorf("Empty binary should default to %s, got %s", DefaultPlayerBinary, got)
	}
}

func TestPlayerArgs(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value is split into fields
	args := settings.GetPlayerArgs()
	if len(args) != 3 {
		t.Fatalf("Expected 3 default player args, got %d: %v", len(args), args)
	}
	if args[0] != "--hwdec=auto" {
		t.Errorf("Expected first arg --hwdec=auto, got %s", args[0])
	}

	// Test setting custom value
	settings.SetPlayerArgs("--fullscreen")
	args = settings.GetPlayerArgs()
	if len(args) != 1 || args[0] != "--fullscreen" {
		t.Errorf("Expected [--fullscreen], got %v", args)
	}

	// Test empty args
	settings.SetPlayerArgs("")
	if args = settings.GetPlayerArgs(); len(args) != 0 {
		t.Errorf("Expected no args, got %v", args)
	}
}

func TestAutoAdvance(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoAdvance() {
		t.Error("Auto-advance should default to true")
	}

	settings.SetAutoAdvance(false)
	if settings.GetAutoAdvance() {
		t.Error("Expected auto-advance to be false after disabling")
	}
}

func TestConfirmDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetConfirmDelete() {
		t.Error("Confirm-delete should default to true")
	}

	settings.SetConfirmDelete(false)
	if settings.GetConfirmDelete() {
		t.Error("Expected confirm-delete to be false after disabling")
	}
}

func TestProgressPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetLibraryDirectory("/custom/videos")
	if got := settings.ProgressPath(); got != "/custom/videos/.progress" {
		t.Errorf("Expected progress path /custom/videos/.progress, got %s", got)
	}
}

func TestHistoryPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHistoryPath() == "" {
		t.Error("History path should not be empty")
	}

	settings.SetHistoryPath("/custom/history.db")
	if got := settings.GetHistoryPath(); got != "/custom/history.db" {
		t.Errorf("Expected history path /custom/history.db, got %s", got)
	}
}
