package model

import (
	"fmt"
	"path/filepath"
)

// Episode represents a single video file in the tracked series
type Episode struct {
	Number   int    // numeric index parsed from the filename stem
	Path     string // absolute path to the video file
	FileSize int64  // file size in bytes
}

// Filename returns the base name of the episode file
func (e Episode) Filename() string {
	return filepath.Base(e.Path)
}

// DisplayTitle returns a human readable title for list rows
func (e Episode) DisplayTitle() string {
	return fmt.Sprintf("Episode %d", e.Number)
}

// EpisodeStatus represents the watch state of an episode relative to the
// progress marker
type EpisodeStatus string

const (
	// EpisodeStatusWatched means the episode is before the current marker
	EpisodeStatusWatched EpisodeStatus = "Watched"

	// EpisodeStatusCurrent means the episode is the one the marker points at
	EpisodeStatusCurrent EpisodeStatus = "Current"

	// EpisodeStatusUnwatched means the episode is after the current marker
	EpisodeStatusUnwatched EpisodeStatus = "Unwatched"
)

// String returns the string representation of EpisodeStatus
func (es EpisodeStatus) String() string {
	return string(es)
}

// StatusAgainst returns the episode's watch state for the given marker number
func (e Episode) StatusAgainst(current int) EpisodeStatus {
	switch {
	case e.Number < current:
		return EpisodeStatusWatched
	case e.Number == current:
		return EpisodeStatusCurrent
	default:
		return EpisodeStatusUnwatched
	}
}
