package player

import (
	"github.com/epwatch/epwatch/internal/model"
)

// Launcher defines the interface for the playback service. The UI depends on
// this interface so tests can substitute a fake player.
type Launcher interface {
	SetUpdateCallback(func(*model.PlaybackSession))
	Play(ep model.Episode) (*model.PlaybackSession, error)
	Stop() error
	Current() (*model.PlaybackSession, bool)
}
