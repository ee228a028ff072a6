package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epwatch/epwatch/internal/model"
)

func episodes(numbers ...int) []model.Episode {
	eps := make([]model.Episode, 0, len(numbers))
	for _, n := range numbers {
		eps = append(eps, model.Episode{Number: n, Path: fmt.Sprintf("/videos/%d.mkv", n)})
	}
	return eps
}

func markerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".progress")
}

func TestLoad_DefaultsToFirstEpisode(t *testing.T) {
	path := markerPath(t)

	tracker, err := Load(path, episodes(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, tracker.Current().Number)

	// No marker file is written until the first mutation.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_ResumesSavedPosition(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("4"), 0o644))

	tracker, err := Load(path, episodes(1, 2, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 4, tracker.Current().Number)
}

func TestLoad_GarbledMarkerFallsBack(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not-a-number"), 0o644))

	tracker, err := Load(path, episodes(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, tracker.Current().Number)
}

func TestLoad_BumpsMarkerBelowFirstAvailable(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("1"), 0o644))

	// Episodes 1 and 2 were deleted; the marker moves to the first available.
	tracker, err := Load(path, episodes(3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 3, tracker.Current().Number)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))
}

func TestLoad_MarkerInGapResolvesForward(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("4"), 0o644))

	tracker, err := Load(path, episodes(1, 3, 5, 7))
	require.NoError(t, err)
	assert.Equal(t, 5, tracker.Current().Number)
}

func TestLoad_EmptyEpisodeList(t *testing.T) {
	_, err := Load(markerPath(t), nil)
	assert.ErrorIs(t, err, ErrUnknownEpisode)
}

func TestAdvance(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("2"), 0o644))

	tracker, err := Load(path, episodes(1, 2, 3, 4, 5))
	require.NoError(t, err)

	ep, err := tracker.Advance()
	require.NoError(t, err)
	assert.Equal(t, 3, ep.Number)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))
}

func TestAdvance_SaturatesAtLastEpisode(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("5"), 0o644))

	tracker, err := Load(path, episodes(1, 2, 3, 4, 5))
	require.NoError(t, err)

	ep, err := tracker.Advance()
	require.NoError(t, err)
	assert.Equal(t, 5, ep.Number)

	ep, err = tracker.Advance()
	require.NoError(t, err)
	assert.Equal(t, 5, ep.Number)
}

func TestAdvance_SkipsMissingNumbers(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("1"), 0o644))

	tracker, err := Load(path, episodes(1, 4, 9))
	require.NoError(t, err)

	ep, err := tracker.Advance()
	require.NoError(t, err)
	assert.Equal(t, 4, ep.Number)
}

func TestSet_PersistsAcrossReload(t *testing.T) {
	path := markerPath(t)

	tracker, err := Load(path, episodes(1, 2, 3, 4, 5))
	require.NoError(t, err)
	require.NoError(t, tracker.Set(4))

	reloaded, err := Load(path, episodes(1, 2, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.Current().Number)
}

func TestSet_RejectsUnknownNumber(t *testing.T) {
	tracker, err := Load(markerPath(t), episodes(1, 2, 3))
	require.NoError(t, err)

	err = tracker.Set(9)
	assert.ErrorIs(t, err, ErrUnknownEpisode)
	assert.Equal(t, 1, tracker.Current().Number)
}

func TestRefresh_AfterDeletion(t *testing.T) {
	path := markerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("2"), 0o644))

	tracker, err := Load(path, episodes(1, 2, 3))
	require.NoError(t, err)

	// Episode 2 disappeared from disk; the marker moves forward.
	require.NoError(t, tracker.Refresh(episodes(1, 3)))
	assert.Equal(t, 3, tracker.Current().Number)
}

func TestSave_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", ".progress")

	tracker, err := Load(path, episodes(1, 2))
	require.NoError(t, err)

	_, err = tracker.Advance()
	assert.ErrorIs(t, err, ErrPersist)
}
