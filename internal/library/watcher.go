package library

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Debounce window for coalescing bursts of filesystem events
const watcherDebounce = 500 * time.Millisecond

// Watcher reports when video files appear in or disappear from the library
// directory, so the episode list can be rescanned.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// NewWatcher starts watching dir and invokes onChange after relevant events.
// The callback runs on a timer goroutine.
func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.run()
	return w, nil
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Str("path", event.Name).Msg("library changed")
			w.fire()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("library watcher error")
		case <-w.done:
			return
		}
	}
}

// relevant reports whether the event concerns a video file coming or going
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return videoExtensions[ext]
}

// fire schedules the callback to run once the event burst quiets down.
// Each new event pushes the deadline back, so no event is ever dropped.
func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Reset(watcherDebounce)
		return
	}

	w.timer = time.AfterFunc(watcherDebounce, func() {
		w.mu.Lock()
		w.timer = nil
		w.mu.Unlock()

		select {
		case <-w.done:
			return
		default:
		}

		if w.onChange != nil {
			w.onChange()
		}
	})
}
