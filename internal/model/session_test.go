package model

import "testing"

func TestPlaybackStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   PlaybackStatus
		expected bool
	}{
		{PlaybackStatusStarting, true},
		{PlaybackStatusPlaying, true},
		{PlaybackStatusFinished, false},
		{PlaybackStatusStopped, false},
		{PlaybackStatusError, false},
	}

	for _, test := range tests {
		if got := test.status.IsActive(); got != test.expected {
			t.Errorf("IsActive() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestPlaybackStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   PlaybackStatus
		expected bool
	}{
		{PlaybackStatusStarting, false},
		{PlaybackStatusPlaying, false},
		{PlaybackStatusFinished, true},
		{PlaybackStatusStopped, true},
		{PlaybackStatusError, true},
	}

	for _, test := range tests {
		if got := test.status.IsFinished(); got != test.expected {
			t.Errorf("IsFinished() for %s = %v, expected %v", test.status, got, test.expected)
		}
	}
}
