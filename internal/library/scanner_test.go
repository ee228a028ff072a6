package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestScan_OrdersByNumber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "3.mkv")
	writeFile(t, dir, "1.mkv")
	writeFile(t, dir, "2.mkv")

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	assert.Equal(t, 1, episodes[0].Number)
	assert.Equal(t, 2, episodes[1].Number)
	assert.Equal(t, 3, episodes[2].Number)
	assert.Equal(t, filepath.Join(dir, "1.mkv"), episodes[0].Path)
}

func TestScan_SkipsNonEpisodeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "5.mkv")
	writeFile(t, dir, "subtitles.srt")
	writeFile(t, dir, "trailer.mkv")
	writeFile(t, dir, ".progress")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "12"), 0o755))

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 5, episodes[0].Number)
}

func TestScan_MixedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10.mp4")
	writeFile(t, dir, "11.webm")
	writeFile(t, dir, "9.MKV")

	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 3)
	assert.Equal(t, 9, episodes[0].Number)
	assert.Equal(t, 11, episodes[2].Number)
}

func TestScan_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Scan(dir)
	assert.ErrorIs(t, err, ErrNoEpisodes)
}

func TestScan_NoNumericFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pilot.mkv")
	writeFile(t, dir, "finale.mp4")

	_, err := Scan(dir)
	assert.ErrorIs(t, err, ErrNoEpisodes)
}

func TestScan_MissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoEpisodes)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.mkv")
	writeFile(t, dir, "3.mkv")

	episodes, err := Scan(dir)
	require.NoError(t, err)

	ep, ok := Find(episodes, 3)
	require.True(t, ok)
	assert.Equal(t, 3, ep.Number)

	_, ok = Find(episodes, 2)
	assert.False(t, ok)
}

func TestNextAfter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.mkv")
	writeFile(t, dir, "3.mkv")
	writeFile(t, dir, "7.mkv")

	episodes, err := Scan(dir)
	require.NoError(t, err)

	ep, ok := NextAfter(episodes, 1)
	require.True(t, ok)
	assert.Equal(t, 3, ep.Number)

	ep, ok = NextAfter(episodes, 3)
	require.True(t, ok)
	assert.Equal(t, 7, ep.Number)

	_, ok = NextAfter(episodes, 7)
	assert.False(t, ok)
}

func TestLastBefore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2.mkv")
	writeFile(t, dir, "4.mkv")
	writeFile(t, dir, "6.mkv")

	episodes, err := Scan(dir)
	require.NoError(t, err)

	ep, ok := LastBefore(episodes, 6)
	require.True(t, ok)
	assert.Equal(t, 4, ep.Number)

	_, ok = LastBefore(episodes, 2)
	assert.False(t, ok)
}
