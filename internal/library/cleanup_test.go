package library

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epwatch/epwatch/internal/model"
)

func TestRemove_DeletesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "1.mkv")
	writeFile(t, dir, "2.mkv")

	ep := model.Episode{Number: 1, Path: path}
	require.NoError(t, Remove(ep))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Subsequent scans no longer see the deleted episode.
	episodes, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 2, episodes[0].Number)
}

func TestRemove_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ep := model.Episode{Number: 1, Path: dir + "/1.mkv"}

	err := Remove(ep)
	assert.ErrorIs(t, err, ErrDeletion)
}
