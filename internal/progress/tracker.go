// Package progress persists the last-watched position across runs. The marker
// file holds a single decimal integer, the number of the current episode.
package progress

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/epwatch/epwatch/internal/library"
	"github.com/epwatch/epwatch/internal/model"
)

var (
	// ErrPersist indicates the marker file could not be written.
	ErrPersist = errors.New("progress persistence failed")

	// ErrUnknownEpisode indicates a requested episode number is not in the library.
	ErrUnknownEpisode = errors.New("unknown episode")
)

// Marker file permissions
const markerFileMode = 0o644

// Tracker holds the current episode marker for one library. It is an explicit
// value, not a singleton; tests construct it against temp directories.
type Tracker struct {
	path     string
	episodes []model.Episode
	current  int
}

// Load reads the marker file and normalizes it against the episode list. An
// absent file defaults to the first episode. An unreadable or garbled file
// logs a warning and falls back to the default instead of failing startup.
func Load(path string, episodes []model.Episode) (*Tracker, error) {
	if len(episodes) == 0 {
		return nil, fmt.Errorf("%w: empty episode list", ErrUnknownEpisode)
	}

	t := &Tracker{
		path:     path,
		episodes: episodes,
		current:  episodes[0].Number,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		number, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
		if parseErr != nil {
			log.Warn().Str("path", path).Err(parseErr).Msg("unreadable progress marker, starting from first episode")
		} else {
			t.current = number
		}
	case os.IsNotExist(err):
		// First run, keep the default.
	default:
		log.Warn().Str("path", path).Err(err).Msg("failed to read progress marker, starting from first episode")
	}

	if err := t.normalize(); err != nil {
		return nil, err
	}
	return t, nil
}

// normalize resolves the marker to an available episode: markers below the
// first available episode or pointing at a since-deleted file are bumped
// forward. Only writes the file when the marker actually moved.
func (t *Tracker) normalize() error {
	if _, ok := library.Find(t.episodes, t.current); ok {
		return nil
	}

	resolved := t.episodes[len(t.episodes)-1]
	if next, ok := library.NextAfter(t.episodes, t.current); ok {
		resolved = next
	}

	log.Info().Int("from", t.current).Int("to", resolved.Number).Msg("progress marker moved to next available episode")
	t.current = resolved.Number
	return t.save()
}

// Current returns the episode the marker points at
func (t *Tracker) Current() model.Episode {
	ep, _ := library.Find(t.episodes, t.current)
	return ep
}

// CurrentNumber returns the marker value
func (t *Tracker) CurrentNumber() int {
	return t.current
}

// Advance moves the marker to the next available episode and persists it.
// At the last episode the marker saturates and no write happens.
func (t *Tracker) Advance() (model.Episode, error) {
	next, ok := library.NextAfter(t.episodes, t.current)
	if !ok {
		return t.Current(), nil
	}

	t.current = next.Number
	if err := t.save(); err != nil {
		return model.Episode{}, err
	}
	return next, nil
}

// Set moves the marker to an explicit episode number and persists it
func (t *Tracker) Set(number int) error {
	if _, ok := library.Find(t.episodes, number); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEpisode, number)
	}

	t.current = number
	return t.save()
}

// Refresh re-normalizes the marker against a rescanned episode list
func (t *Tracker) Refresh(episodes []model.Episode) error {
	if len(episodes) == 0 {
		return fmt.Errorf("%w: empty episode list", ErrUnknownEpisode)
	}
	t.episodes = episodes
	return t.normalize()
}

// Episodes returns the episode list the tracker was loaded against
func (t *Tracker) Episodes() []model.Episode {
	return t.episodes
}

func (t *Tracker) save() error {
	if err := os.WriteFile(t.path, []byte(strconv.Itoa(t.current)), markerFileMode); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
