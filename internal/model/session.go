package model

import "time"

// PlaybackStatus represents the status of a playback session
type PlaybackStatus string

const (
	// PlaybackStatusStarting means the player process is being spawned
	PlaybackStatusStarting PlaybackStatus = "Starting"

	// PlaybackStatusPlaying means the player process is running
	PlaybackStatusPlaying PlaybackStatus = "Playing"

	// PlaybackStatusFinished means the player exited normally
	PlaybackStatusFinished PlaybackStatus = "Finished"

	// PlaybackStatusStopped means playback was stopped by the user
	PlaybackStatusStopped PlaybackStatus = "Stopped"

	// PlaybackStatusError means the player exited with an error
	PlaybackStatusError PlaybackStatus = "Error"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsActive returns true if the session is in an active state
func (ps PlaybackStatus) IsActive() bool {
	return ps == PlaybackStatusStarting || ps == PlaybackStatusPlaying
}

// IsFinished returns true if the session is in a terminal state
func (ps PlaybackStatus) IsFinished() bool {
	return ps == PlaybackStatusFinished || ps == PlaybackStatusStopped || ps == PlaybackStatusError
}

// PlaybackSession represents one invocation of the external media player
type PlaybackSession struct {
	ID         string
	Episode    Episode
	Status     PlaybackStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when the player was spawned
	FinishedAt time.Time // when the player exited
}
