// Package player spawns the external media player on an episode file and
// tracks the resulting playback session.
package player

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/epwatch/epwatch/internal/model"
)

// ErrPlayerNotFound indicates the configured player binary is not on PATH.
var ErrPlayerNotFound = errors.New("player binary not found")

// Default player invocation, matching a typical mpv setup
const DefaultBinary = "mpv"

// DefaultArgs returns the default player arguments
func DefaultArgs() []string {
	return []string{"--hwdec=auto", "--profile=gpu-hq", "--force-window=yes"}
}

// Session ID prefix
const sessionIDPrefix = "play-"

// Service launches the external player process. At most one session runs at a
// time; starting a new one terminates the previous player first.
type Service struct {
	binary string
	args   []string

	mu       sync.RWMutex
	session  *model.PlaybackSession
	cancel   context.CancelFunc
	onUpdate func(*model.PlaybackSession) // callback for UI updates
}

// NewService creates a playback service for the given binary and arguments
func NewService(binary string, args []string) *Service {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Service{binary: binary, args: args}
}

// SetUpdateCallback sets the callback function for session updates
func (s *Service) SetUpdateCallback(callback func(*model.PlaybackSession)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Play spawns the player on the episode's file. It fails with
// ErrPlayerNotFound before any state changes when the binary is unavailable.
func (s *Service) Play(ep model.Episode) (*model.PlaybackSession, error) {
	if _, err := exec.LookPath(s.binary); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, s.binary)
	}

	// Terminate any previous player before starting a new one.
	if err := s.Stop(); err != nil {
		log.Warn().Err(err).Msg("failed to stop previous playback session")
	}

	session := &model.PlaybackSession{
		ID:        generateSessionID(),
		Episode:   ep,
		Status:    model.PlaybackStatusStarting,
		StartedAt: time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	args := append(append([]string{}, s.args...), ep.Path)
	cmd := exec.CommandContext(ctx, s.binary, args...)

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start %s: %w", s.binary, err)
	}

	s.mu.Lock()
	s.session = session
	s.cancel = cancel
	session.Status = model.PlaybackStatusPlaying
	s.mu.Unlock()

	log.Info().Str("session", session.ID).Int("episode", ep.Number).
		Str("binary", s.binary).Msg("playback started")
	s.notifyUpdate(session)

	go s.waitForExit(ctx, cmd, session)

	return session, nil
}

// waitForExit blocks on the player process and flips the session to its
// terminal state when it exits
func (s *Service) waitForExit(ctx context.Context, cmd *exec.Cmd, session *model.PlaybackSession) {
	err := cmd.Wait()

	s.mu.Lock()
	switch {
	case ctx.Err() == context.Canceled:
		session.Status = model.PlaybackStatusStopped
	case err != nil:
		session.Status = model.PlaybackStatusError
		session.LastError = err.Error()
	default:
		session.Status = model.PlaybackStatusFinished
	}
	session.FinishedAt = time.Now()
	if s.session == session {
		s.cancel = nil
	}
	s.mu.Unlock()

	log.Info().Str("session", session.ID).Str("status", session.Status.String()).
		Msg("playback ended")
	s.notifyUpdate(session)
}

// Stop terminates the running player, if any
func (s *Service) Stop() error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return nil
}

// Current returns the active session, if one exists
func (s *Service) Current() (*model.PlaybackSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil || !s.session.Status.IsActive() {
		return nil, false
	}
	return s.session, true
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(session *model.PlaybackSession) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(session)
	}
}

// generateSessionID generates a unique session ID using UUID v7 so sessions
// sort chronologically
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(sessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return sessionIDPrefix + id.String()
}
