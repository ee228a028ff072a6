package library

import "errors"

var (
	// ErrNoEpisodes indicates the directory holds no numerically named video files.
	ErrNoEpisodes = errors.New("no episodes found")

	// ErrDeletion indicates an episode file could not be removed.
	ErrDeletion = errors.New("deletion failed")
)
