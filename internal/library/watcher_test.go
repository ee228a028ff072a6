package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnNewEpisode(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(dir, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.mkv"), []byte("x"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification after creating an episode file")
	}
}

func TestWatcher_FiresAgainForLaterEpisode(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 4)
	w, err := NewWatcher(dir, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.mkv"), []byte("x"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification for the first episode file")
	}

	// A file landing right after the previous notification must still
	// produce its own, not be swallowed by the debounce window.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2.mkv"), []byte("x"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification for an episode file created after a prior notification")
	}
}

func TestWatcher_IgnoresNonVideoFiles(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(dir, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".progress"), []byte("3"), 0o644))

	select {
	case <-changed:
		t.Fatal("unexpected change notification for a non-video file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}
