package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/epwatch/epwatch/internal/model"
)

// Video file extensions recognized by the scanner
var videoExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".avi":  true,
	".webm": true,
	".mov":  true,
}

// Scan reads the library directory and returns episodes ordered ascending by
// number. Files whose extension is not a video extension or whose stem does
// not parse as an integer are skipped. Returns ErrNoEpisodes when nothing
// usable is found.
func Scan(dir string) ([]model.Episode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read library directory %s: %w", dir, err)
	}

	var episodes []model.Episode
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !videoExtensions[ext] {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		number, err := strconv.Atoi(stem)
		if err != nil {
			continue
		}

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		episodes = append(episodes, model.Episode{
			Number:   number,
			Path:     filepath.Join(dir, name),
			FileSize: size,
		})
	}

	if len(episodes) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoEpisodes, dir)
	}

	sort.Slice(episodes, func(i, j int) bool {
		return episodes[i].Number < episodes[j].Number
	})

	return episodes, nil
}

// Find returns the episode with the given number from an ordered list
func Find(episodes []model.Episode, number int) (model.Episode, bool) {
	for _, ep := range episodes {
		if ep.Number == number {
			return ep, true
		}
	}
	return model.Episode{}, false
}

// NextAfter returns the first episode with a number greater than the given
// one, or false when the list is exhausted
func NextAfter(episodes []model.Episode, number int) (model.Episode, bool) {
	for _, ep := range episodes {
		if ep.Number > number {
			return ep, true
		}
	}
	return model.Episode{}, false
}

// LastBefore returns the episode with the highest number strictly below the
// given one, or false when there is none
func LastBefore(episodes []model.Episode, number int) (model.Episode, bool) {
	var found model.Episode
	ok := false
	for _, ep := range episodes {
		if ep.Number < number {
			found = ep
			ok = true
		}
	}
	return found, ok
}
